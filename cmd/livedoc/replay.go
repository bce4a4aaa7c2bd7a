package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/livedoc/encode"
	"github.com/signadot/livedoc/journal"
	"github.com/signadot/livedoc/report"
	"github.com/signadot/livedoc/session"
	"github.com/signadot/livedoc/wire"
)

func replay(cfg *ReplayConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Replay.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Diff && cfg.JSONPatch {
		return fmt.Errorf("%w: -diff and -json-patch are exclusive", cli.ErrUsage)
	}
	ctx := context.Background()
	spec := &session.Spec{}
	if cfg.Journal != "" {
		j, err := journal.Open(cfg.Journal)
		if err != nil {
			return err
		}
		defer j.Close()
		spec.Recorder = j
	}
	sess := newSession(spec)
	encOpts := cfg.encOpts(cc.Out)

	var step stepFunc
	switch {
	case cfg.Diff:
		step = func(msg *wire.ForwardMsg, before, after *report.Root) error {
			d := encode.Diff(encode.MustString(before, encOpts...), encode.MustString(after, encOpts...))
			fmt.Fprintf(cc.Out, "# %s\n%s", describe(msg), d)
			return nil
		}
	case cfg.JSONPatch:
		step = func(msg *wire.ForwardMsg, before, after *report.Root) error {
			patch, err := encode.MergePatch(before, after)
			if err != nil {
				return fmt.Errorf("patch for %s: %w", describe(msg), err)
			}
			fmt.Fprintf(cc.Out, "%s\n", patch)
			return nil
		}
	}
	if err := replayFiles(ctx, cc, sess, args, step); err != nil {
		return err
	}
	if step != nil {
		return nil
	}
	return encode.EncodeRoot(sess.Current(), cc.Out, encOpts...)
}

func describe(msg *wire.ForwardMsg) string {
	switch {
	case msg.NewRun != nil:
		return fmt.Sprintf("newRun %s", msg.NewRun.RunID)
	case msg.Delta != nil:
		m, err := msg.Delta.Message()
		if err != nil {
			return "delta"
		}
		return m.String()
	case msg.RunFinished != nil:
		return "runFinished"
	default:
		return "empty"
	}
}
