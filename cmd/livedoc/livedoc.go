package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/livedoc/report"
	"github.com/signadot/livedoc/session"
	"github.com/signadot/livedoc/wire"
)

func livedocMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	theLog = newLog(os.Stderr, cfg.Verbose)
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// stepFunc is called after each message is handled with the roots before
// and after it.
type stepFunc func(msg *wire.ForwardMsg, before, after *report.Root) error

// replayFiles feeds the message streams in files, or stdin if there are
// none, through sess.
func replayFiles(ctx context.Context, cc *cli.Context, sess *session.Session, files []string, step stepFunc) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := replayFile(ctx, cc, sess, file, step); err != nil {
			return err
		}
	}
	return nil
}

func replayFile(ctx context.Context, cc *cli.Context, sess *session.Session, file string, step stepFunc) error {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	dec := wire.NewDecoder(r)
	for i := 0; ; i++ {
		msg, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: message %d: %w", file, i, err)
		}
		before := sess.Current()
		if err := sess.Handle(ctx, msg); err != nil {
			return fmt.Errorf("%s: message %d: %w", file, i, err)
		}
		if step == nil {
			continue
		}
		if err := step(msg, before, sess.Current()); err != nil {
			return err
		}
	}
}

func newSession(spec *session.Spec) *session.Session {
	if spec.Log == nil {
		spec.Log = theLog
	}
	return session.New(spec)
}
