package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/livedoc/encode"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/session"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	arg := args[0]
	if arg == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if arg[0] != '$' {
		arg = "$" + arg
	}
	path, err := node.ParsePath(arg)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	sess := newSession(&session.Spec{})
	if err := replayFiles(context.Background(), cc, sess, args[1:], nil); err != nil {
		return err
	}
	n, ok := sess.Current().GetIn(path)
	if !ok {
		return fmt.Errorf("nothing at %s", path)
	}
	if !cfg.Rows {
		return encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...)
	}
	e, ok := n.(*node.Element)
	if !ok {
		return fmt.Errorf("%w: -rows needs an element, %s is a block", cli.ErrUsage, path)
	}
	return renderData(cc.Out, e)
}
