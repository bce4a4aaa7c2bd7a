package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/livedoc/encode"
	"github.com/signadot/livedoc/journal"
	"github.com/signadot/livedoc/session"
	"github.com/signadot/livedoc/wire"
)

func journalCmd(cfg *JournalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Journal.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: journal requires one argument, a database", cli.ErrUsage)
	}
	ctx := context.Background()
	j, err := journal.Open(args[0])
	if err != nil {
		return err
	}
	defer j.Close()

	if cfg.Replay {
		sess := newSession(&session.Spec{})
		err := j.Replay(ctx, func(seq int64, msg *wire.ForwardMsg) error {
			if err := sess.Handle(ctx, msg); err != nil {
				return fmt.Errorf("message %d: %w", seq, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return encode.EncodeRoot(sess.Current(), cc.Out, cfg.encOpts(cc.Out)...)
	}

	runs, err := j.Runs(ctx)
	if err != nil {
		return err
	}
	renderRuns(cc.Out, runs)
	return nil
}
