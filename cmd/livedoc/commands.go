package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "livedoc").
		WithSynopsis("livedoc [opts] command [opts]").
		WithDescription("livedoc builds and inspects live documents from run message streams.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return livedocMain(cfg, cc, args)
		}).
		WithSubs(
			ReplayCommand(cfg),
			GetCommand(cfg),
			ElementsCommand(cfg),
			FollowCommand(cfg),
			JournalCommand(cfg))
}

func ReplayCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplayConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Replay, "replay").
		WithAliases("r").
		WithSynopsis("replay [-diff] [-json-patch] [-journal db] [files]").
		WithDescription("apply message streams and print the resulting document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return replay(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-rows] <path> [files]").
		WithOpts(opts...).
		WithDescription("print the node at a path such as $[0][1] of the replayed document").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ElementsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ElementsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Elements, "elements").
		WithAliases("e", "el").
		WithSynopsis("elements [-where expr] [files]").
		WithDescription(elementsDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return elements(cfg, cc, args)
		})
}

const elementsDescription = `list the live elements of the replayed document.

-where filters elements with an expression over
  path      string    e.g. "$[0][2]"
  kind      string    empty, text, dataFrame or chart
  runId     string
  rows      int       rows over all tables
  columns   []string  column names over all tables
  tables    int
  datasets  []string  chart dataset names
  text      string    body of text elements
  hasColumn(name)

for example: -where 'kind == "chart" && rows > 100'`

func FollowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FollowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Follow, "follow").
		WithAliases("f").
		WithSynopsis("follow [-config file] [-diff] [-gops]").
		WithDescription("read a message stream from stdin and print the document each time it is published").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return follow(cfg, cc, args)
		})
}

func JournalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JournalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Journal, "journal").
		WithAliases("j").
		WithSynopsis("journal [-replay] <db>").
		WithDescription("list the runs recorded in a journal, or replay it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return journalCmd(cfg, cc, args)
		})
}
