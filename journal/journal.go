// Package journal records the messages applied to a live document in an
// SQLite database so that a session can be replayed later.
//
//	j, err := journal.Open("session.db")
//	...
//	sess := session.New(&session.Spec{Recorder: j})
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/wire"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	seq     INTEGER PRIMARY KEY,
	run_id  TEXT NOT NULL,
	kind    TEXT NOT NULL,
	body    BLOB NOT NULL,
	at_ms   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS messages_run ON messages(run_id, seq);
`

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the journal at path. Use ":memory:" for a
// throwaway journal.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	// each connection to ":memory:" is a distinct database
	db.SetMaxOpenConns(1)
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("journal: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: schema: %w", err)
	}
	return &Journal{db: db, now: time.Now}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends msg to the journal.
func (j *Journal) Record(ctx context.Context, runID node.RunID, msg *wire.ForwardMsg) error {
	body, err := wire.MarshalJSON(msg)
	if err != nil {
		return err
	}
	_, err = j.db.ExecContext(ctx,
		`INSERT INTO messages (run_id, kind, body, at_ms) VALUES (?, ?, ?, ?)`,
		string(runID), kindOf(msg), body, j.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("journal: record %s: %w", kindOf(msg), err)
	}
	return nil
}

// LastSeq returns the highest recorded sequence number, or 0.
func (j *Journal) LastSeq(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	if err := j.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM messages`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("journal: last seq: %w", err)
	}
	return seq.Int64, nil
}

// Run summarizes one recorded run.
type Run struct {
	RunID    node.RunID
	Messages int
	Deltas   int
	Finished bool
	Start    time.Time
}

// Runs lists recorded runs in the order they started.
func (j *Journal) Runs(ctx context.Context) ([]Run, error) {
	rows, err := j.db.QueryContext(ctx, `
SELECT run_id,
       COUNT(*),
       SUM(CASE WHEN kind = 'delta' THEN 1 ELSE 0 END),
       SUM(CASE WHEN kind = 'runFinished' THEN 1 ELSE 0 END),
       MIN(at_ms)
FROM messages
GROUP BY run_id
ORDER BY MIN(seq)`)
	if err != nil {
		return nil, fmt.Errorf("journal: runs: %w", err)
	}
	defer rows.Close()
	var res []Run
	for rows.Next() {
		var (
			r        Run
			runID    string
			finished int
			startMS  int64
		)
		if err := rows.Scan(&runID, &r.Messages, &r.Deltas, &finished, &startMS); err != nil {
			return nil, fmt.Errorf("journal: runs: %w", err)
		}
		r.RunID = node.RunID(runID)
		r.Finished = finished > 0
		r.Start = time.UnixMilli(startMS)
		res = append(res, r)
	}
	return res, rows.Err()
}

// Replay calls fn with every recorded message in sequence order. It stops at
// the first error returned by fn. fn must not record to j.
func (j *Journal) Replay(ctx context.Context, fn func(seq int64, msg *wire.ForwardMsg) error) error {
	rows, err := j.db.QueryContext(ctx, `SELECT seq, body FROM messages ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("journal: replay: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			seq  int64
			body []byte
		)
		if err := rows.Scan(&seq, &body); err != nil {
			return fmt.Errorf("journal: replay: %w", err)
		}
		msg, err := wire.UnmarshalJSON(body)
		if err != nil {
			return fmt.Errorf("journal: message %d: %w", seq, err)
		}
		if err := fn(seq, msg); err != nil {
			return err
		}
	}
	return rows.Err()
}

func kindOf(msg *wire.ForwardMsg) string {
	switch {
	case msg.NewRun != nil:
		return "newRun"
	case msg.Delta != nil:
		return "delta"
	case msg.RunFinished != nil:
		return "runFinished"
	default:
		return "unknown"
	}
}
