// Package query selects live elements of a report with expr-lang
// expressions such as
//
//	kind == "dataFrame" && rows > 10
//	path startsWith "$[1]" || hasColumn("latency")
package query

import (
	"errors"
	"fmt"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/report"
	"github.com/signadot/livedoc/tree"
)

var ErrNotBool = errors.New("query did not yield a bool")

// Env is what a query sees of one element.
type Env struct {
	Path     string   `expr:"path"`
	Kind     string   `expr:"kind"`
	RunID    string   `expr:"runId"`
	Rows     int      `expr:"rows"`
	Columns  []string `expr:"columns"`
	Tables   int      `expr:"tables"`
	Datasets []string `expr:"datasets"`
	Text     string   `expr:"text"`

	HasColumn func(string) bool `expr:"hasColumn"`
}

// NewEnv describes e, found at path.
func NewEnv(path node.Path, e *node.Element) *Env {
	sum := e.Summary()
	env := &Env{
		Path:    path.String(),
		Kind:    sum.Kind.String(),
		RunID:   string(e.RunID),
		Rows:    sum.Rows,
		Tables:  sum.Tables,
		Columns: []string{},
	}
	env.HasColumn = func(name string) bool {
		return slices.Contains(env.Columns, name)
	}
	for _, t := range node.Tables(e.Payload) {
		for _, name := range t.ColumnNames() {
			if !slices.Contains(env.Columns, name) {
				env.Columns = append(env.Columns, name)
			}
		}
	}
	switch p := e.Payload.(type) {
	case node.Text:
		env.Text = p.Body
	case node.Chart:
		for _, ds := range p.Datasets {
			env.Datasets = append(env.Datasets, ds.Name)
		}
	}
	return env
}

type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must evaluate to a bool.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match reports whether env satisfies q.
func (q *Query) Match(env *Env) (bool, error) {
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("running %q on %s: %w", q.src, env.Path, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrNotBool, q.src, res)
	}
	return b, nil
}

// Result is a selected element.
type Result struct {
	Path    node.Path
	Element *node.Element
}

// Select returns the elements of r matching q in document order. A nil q
// selects every element.
func Select(r *report.Root, q *Query) ([]Result, error) {
	var (
		res []Result
		err error
	)
	tree.Walk(r.Node(), nil, func(path node.Path, n node.Node) bool {
		if err != nil {
			return false
		}
		e, ok := n.(*node.Element)
		if !ok {
			return true
		}
		if q != nil {
			var m bool
			m, err = q.Match(NewEnv(path, e))
			if err != nil || !m {
				return false
			}
		}
		res = append(res, Result{Path: path, Element: e})
		return true
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(&Env{}),
		expr.AsBool(),
	}
}
