package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/livedoc/query"
	"github.com/signadot/livedoc/session"
)

func elements(cfg *ElementsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Elements.Parse(cc, args)
	if err != nil {
		return err
	}
	var q *query.Query
	if cfg.Where != "" {
		q, err = query.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	sess := newSession(&session.Spec{})
	if err := replayFiles(context.Background(), cc, sess, args, nil); err != nil {
		return err
	}
	res, err := query.Select(sess.Current(), q)
	if err != nil {
		return err
	}
	renderElements(cc.Out, res)
	return nil
}
