package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/livedoc/encode"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	NoRuns  bool `cli:"name=noruns desc='omit run ids when rendering'"`
	Verbose bool `cli:"name=v desc='log debug messages'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeRunIDs(!cfg.NoRuns),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ReplayConfig struct {
	*MainConfig
	Diff      bool   `cli:"name=diff desc='print the outline diff after each message'"`
	JSONPatch bool   `cli:"name=json-patch desc='print a JSON merge patch after each message'"`
	Journal   string `cli:"name=journal desc='record applied messages to this sqlite journal'"`

	Replay *cli.Command
}

type GetConfig struct {
	*MainConfig
	Rows bool `cli:"name=rows desc='print the table data of the element'"`

	Get *cli.Command
}

type ElementsConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only list elements matching this expression'"`

	Elements *cli.Command
}

type FollowConfig struct {
	*MainConfig
	ConfigFile string `cli:"name=config desc='session config file (yaml)'"`
	Diff       bool   `cli:"name=diff desc='print outline diffs instead of whole outlines'"`
	Gops       bool   `cli:"name=gops desc='start a gops agent'"`

	Follow *cli.Command
}

type JournalConfig struct {
	*MainConfig
	Replay bool `cli:"name=replay desc='replay the journal and print the resulting document'"`

	Journal *cli.Command
}
