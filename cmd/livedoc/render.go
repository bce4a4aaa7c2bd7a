package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/signadot/livedoc/journal"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/query"
	ltable "github.com/signadot/livedoc/table"
)

func renderElements(w io.Writer, res []query.Result) {
	if len(res) == 0 {
		fmt.Fprintln(w, "(0 elements)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Path", "Kind", "Run", "Tables", "Rows", "Columns"})
	for _, r := range res {
		env := query.NewEnv(r.Path, r.Element)
		t.AppendRow(table.Row{env.Path, env.Kind, env.RunID, env.Tables, env.Rows, strings.Join(env.Columns, ",")})
	}
	t.Render()
}

func renderRuns(w io.Writer, runs []journal.Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run", "Start", "State", "Messages", "Deltas"})
	for _, r := range runs {
		state := "open"
		if r.Finished {
			state = "finished"
		}
		t.AppendRow(table.Row{r.RunID, r.Start.Format(time.RFC3339), state, r.Messages, r.Deltas})
	}
	t.Render()
}

// renderData prints the cells of every table held by e.
func renderData(w io.Writer, e *node.Element) error {
	type named struct {
		name string
		t    *ltable.Table
	}
	var tables []named
	switch p := e.Payload.(type) {
	case node.DataFrame:
		if p.Table != nil {
			tables = append(tables, named{"data", p.Table})
		}
	case node.Chart:
		if p.Data != nil {
			tables = append(tables, named{"data", p.Data})
		}
		for _, ds := range p.Datasets {
			tables = append(tables, named{ds.Name, ds.Table})
		}
	default:
		return fmt.Errorf("%s element holds no table", node.KindOf(e.Payload))
	}
	for _, nt := range tables {
		if nt.t == nil {
			continue
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.SetTitle(nt.name)
		header := table.Row{""}
		for _, name := range nt.t.ColumnNames() {
			header = append(header, name)
		}
		t.AppendHeader(header)
		for i := range nt.t.Rows() {
			row := table.Row{ltable.Label(nt.t.Index, i)}
			for _, c := range nt.t.Columns {
				row = append(row, ltable.Cell(c.Data, i))
			}
			t.AppendRow(row)
		}
		t.Render()
	}
	return nil
}
