// Package session owns the live document of a remote execution: it applies
// incoming deltas in order, prunes stale nodes at run boundaries, and
// publishes successive roots to watchers.
//
// A Session has a single writer side (BeginRun, Apply, FinishRun, Handle)
// which is serialized internally, and a reader side (Root, Watch) which
// never blocks the writer: published roots are immutable and may be read
// for as long as a reader likes.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/signadot/livedoc/debug"
	"github.com/signadot/livedoc/delta"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/report"
	"github.com/signadot/livedoc/wire"
)

var (
	ErrNoRun    = errors.New("no run in progress")
	ErrEmptyMsg = errors.New("empty forward message")
)

// Recorder persists the messages a session applies.
type Recorder interface {
	Record(ctx context.Context, runID node.RunID, msg *wire.ForwardMsg) error
}

// Spec holds the runtime dependencies and settings of a session.
// Config contains the serializable settings loaded from a file.
type Spec struct {
	Config   *Config
	Log      *slog.Logger
	Metrics  Metrics
	Recorder Recorder
}

type Session struct {
	spec Spec
	Hub  *Hub

	mu    sync.Mutex
	root  *report.Root
	runID node.RunID
	dirty bool

	published atomic.Pointer[report.Root]
}

// New creates a session over an empty report root.
func New(spec *Spec) *Session {
	if spec.Log == nil {
		spec.Log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(),
		}))
	}
	if spec.Config == nil {
		spec.Config = DefaultConfig()
	}
	if spec.Config.Publish == nil {
		spec.Config.Publish = DefaultConfig().Publish
	}
	if spec.Metrics == nil {
		spec.Metrics = nopMetrics{}
	}
	s := &Session{
		spec: *spec,
		Hub:  NewHub(spec.Config.Publish.BroadcastTimeout),
		root: report.Empty(),
	}
	s.published.Store(s.root)
	return s
}

func slogLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewRunID returns a fresh, time ordered run id.
func NewRunID() node.RunID {
	return node.RunID(ulid.Make().String())
}

// BeginRun starts a run. If runID is NoRun a new id is minted.
func (s *Session) BeginRun(ctx context.Context, runID node.RunID) (node.RunID, error) {
	if runID == node.NoRun {
		runID = NewRunID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, runID, &wire.ForwardMsg{NewRun: &wire.NewRun{RunID: string(runID)}}); err != nil {
		return node.NoRun, err
	}
	s.runID = runID
	s.spec.Log.Info("run started", "runId", runID)
	return runID, nil
}

// RunID returns the id of the current run, or NoRun.
func (s *Session) RunID() node.RunID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// Apply applies m to the current root on behalf of the current run. On
// error the current root is unchanged.
func (s *Session) Apply(ctx context.Context, m *delta.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runID == node.NoRun {
		s.spec.Metrics.DeltaFailed()
		return fmt.Errorf("%w: %s", ErrNoRun, m)
	}
	next, err := s.root.Apply(m, s.runID)
	if err != nil {
		s.spec.Metrics.DeltaFailed()
		s.spec.Log.Error("delta failed", "delta", m.String(), "runId", s.runID, "error", err)
		return err
	}
	if s.spec.Recorder != nil {
		w, err := wire.FromMessage(m)
		if err != nil {
			return err
		}
		if err := s.record(ctx, s.runID, &wire.ForwardMsg{Delta: w}); err != nil {
			return err
		}
	}
	if debug.Delta() {
		debug.Logf("applied %s in run %s\n", m, s.runID)
	}
	s.root = next
	s.dirty = true
	s.spec.Metrics.DeltaApplied(m.Delta.Kind())
	return nil
}

// FinishRun removes the nodes the current run did not produce and ends the
// run. It returns the number of elements removed.
func (s *Session) FinishRun(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runID == node.NoRun {
		return 0, ErrNoRun
	}
	if err := s.record(ctx, s.runID, &wire.ForwardMsg{RunFinished: &wire.RunFinished{}}); err != nil {
		return 0, err
	}
	before := len(s.root.Elements())
	s.root = s.root.ClearStaleNodes(s.runID)
	pruned := before - len(s.root.Elements())
	if debug.Prune() {
		debug.Logf("pruned %d elements for run %s\n%v\n", pruned, s.runID, debug.Root{Root: s.root})
	}
	s.spec.Log.Info("run finished", "runId", s.runID, "pruned", pruned)
	s.spec.Metrics.RunFinished(pruned)
	s.runID = node.NoRun
	s.dirty = true
	return pruned, nil
}

// Handle dispatches a decoded wire message.
func (s *Session) Handle(ctx context.Context, fwd *wire.ForwardMsg) error {
	switch {
	case fwd.NewRun != nil:
		_, err := s.BeginRun(ctx, node.RunID(fwd.NewRun.RunID))
		return err
	case fwd.Delta != nil:
		m, err := fwd.Delta.Message()
		if err != nil {
			s.spec.Metrics.DeltaFailed()
			return err
		}
		return s.Apply(ctx, m)
	case fwd.RunFinished != nil:
		_, err := s.FinishRun(ctx)
		return err
	default:
		return ErrEmptyMsg
	}
}

// Current returns the writer's latest root, which may not be published yet.
func (s *Session) Current() *report.Root {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// Root returns the most recently published root.
func (s *Session) Root() *report.Root {
	return s.published.Load()
}

// Flush publishes the writer's root if it changed since the last
// publication, and returns the published root.
func (s *Session) Flush() *report.Root {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return s.published.Load()
	}
	root := s.root
	s.dirty = false
	s.published.Store(root)
	s.mu.Unlock()

	s.Hub.Broadcast(root)
	s.spec.Metrics.Published()
	if debug.Publish() {
		debug.Logf("published root to %d watchers\n", s.Hub.Len())
	}
	return root
}

// Watch registers a watcher for published roots.
func (s *Session) Watch() *Watcher {
	w := NewWatcher(s.spec.Config.Publish.WatchBuffer)
	s.Hub.Watch(w)
	return w
}

// Run publishes on the configured interval until ctx is done, then
// publishes once more and returns ctx's error.
func (s *Session) Run(ctx context.Context) error {
	interval := s.spec.Config.Publish.Interval
	if interval <= 0 {
		<-ctx.Done()
		s.Flush()
		return ctx.Err()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Flush()
			return ctx.Err()
		case <-ticker.C:
			s.Flush()
		}
	}
}

// record must be called with s.mu held.
func (s *Session) record(ctx context.Context, runID node.RunID, msg *wire.ForwardMsg) error {
	if s.spec.Recorder == nil {
		return nil
	}
	if err := s.spec.Recorder.Record(ctx, runID, msg); err != nil {
		return fmt.Errorf("recording message: %w", err)
	}
	return nil
}
