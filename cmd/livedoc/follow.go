package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/livedoc/encode"
	"github.com/signadot/livedoc/journal"
	"github.com/signadot/livedoc/session"
)

func follow(cfg *FollowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Follow.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: follow reads stdin, got %v", cli.ErrUsage, args)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}

	sessCfg := session.DefaultConfig()
	if cfg.ConfigFile != "" {
		sessCfg, err = session.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	counters := &session.Counters{}
	spec := &session.Spec{Config: sessCfg, Metrics: counters}
	if sessCfg.Journal.Path != "" {
		j, err := journal.Open(sessCfg.Journal.Path)
		if err != nil {
			return err
		}
		defer j.Close()
		spec.Recorder = j
	}
	encOpts := cfg.encOpts(cc.Out)
	if sessCfg.Render.Color {
		encOpts = append(encOpts, encode.EncodeColors(encode.NewColors()))
	}
	sess := newSession(spec)

	ctx := context.Background()
	runCtx, cancelRun := context.WithCancel(ctx)
	w := sess.Watch()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sess.Run(runCtx)
		sess.Hub.Unwatch(w)
		close(w.Roots)
	}()
	go func() {
		defer wg.Done()
		last := ""
		for root := range w.Roots {
			out := encode.MustString(root, encOpts...)
			if cfg.Diff {
				fmt.Fprint(cc.Out, encode.Diff(last, out))
			} else {
				fmt.Fprintf(cc.Out, "---\n%s", out)
			}
			last = out
		}
	}()

	err = replayFiles(ctx, cc, sess, nil, nil)
	cancelRun()
	wg.Wait()
	if err != nil {
		return err
	}
	vals := counters.Values()
	theLog.Info("done", "runs", vals.Runs, "failed", vals.Failed, "pruned", vals.Pruned, "published", vals.Published)
	return nil
}
