package report

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/livedoc/delta"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/table"
)

var ignoreCache = cmpopts.IgnoreUnexported(node.Element{})

// must fails t on error: must(t)(r.ApplyDelta(...)).
func must(t *testing.T) func(*Root, error) *Root {
	t.Helper()
	return func(r *Root, err error) *Root {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return r
	}
}

func twoRows(index table.Index) *table.Table {
	return &table.Table{
		Index:   index,
		Columns: []table.NamedColumn{{Name: "a", Data: table.Int64Column{10, 20}}},
	}
}

func TestNewArity(t *testing.T) {
	b := func() node.Node { return node.NewBlock(nil, true, node.NoRun) }
	tests := []struct {
		name     string
		children []node.Node
	}{
		{"none", nil},
		{"one", []node.Node{b()}},
		{"three", []node.Node{b(), b(), b()}},
		{"element", []node.Node{b(), node.NewElement(nil, node.NoRun)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.children...); !errors.Is(err, ErrRootArity) {
				t.Errorf("New() error = %v, want %v", err, ErrRootArity)
			}
		})
	}
	r := Empty()
	if r.Main().Len() != 0 || r.Sidebar().Len() != 0 || !r.Main().AllowEmpty {
		t.Errorf("Empty() = %+v", r.Node())
	}
}

func TestScenarioNewElement(t *testing.T) {
	placeholder := node.NewElement(node.Empty{}, "r1")
	main := node.NewBlock([]node.Node{
		placeholder,
		node.NewBlock([]node.Node{
			node.NewElement(node.Text{Body: "old"}, "r1"),
		}, false, "r1"),
	}, true, "r1")
	r := must(t)(New(main, node.NewBlock(nil, true, node.NoRun)))

	el := node.Text{Body: "newElement!"}
	r2 := must(t)(r.ApplyDelta(node.Path{0, 1, 1}, delta.NewElement{Payload: el}, "r2"))

	got, ok := r2.GetIn(node.Path{0, 1, 1})
	if !ok {
		t.Fatal("element not found")
	}
	e := got.(*node.Element)
	if e.RunID != "r2" || e.Payload != node.Payload(el) {
		t.Errorf("got %+v", e)
	}
	untouched, _ := r2.GetIn(node.Path{0, 0})
	if untouched != placeholder || untouched.Run() != "r1" {
		t.Errorf("untouched node changed: %+v", untouched)
	}
	if _, ok := r.GetIn(node.Path{0, 1, 1}); ok {
		t.Errorf("old root modified")
	}
}

func TestScenarioAddBlockAndPrune(t *testing.T) {
	r := Empty()
	r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.AddBlock{AllowEmpty: true}, "r1"))
	r = must(t)(r.ApplyDelta(node.Path{0, 1}, delta.AddBlock{AllowEmpty: false}, "r1"))
	r = r.ClearStaleNodes("r1")

	got, ok := r.GetIn(node.Path{0, 0})
	if !ok {
		t.Fatal("allowEmpty block pruned")
	}
	if b := got.(*node.Block); !b.AllowEmpty || b.Len() != 0 {
		t.Errorf("got %+v", b)
	}
	if _, ok := r.GetIn(node.Path{0, 1}); ok {
		t.Errorf("empty block without allowEmpty survived")
	}
}

func TestAddBlockCarriesChildren(t *testing.T) {
	r := Empty()
	r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.AddBlock{}, "r1"))
	r = must(t)(r.ApplyDelta(node.Path{0, 0, 0}, delta.NewElement{Payload: node.Text{Body: "kept"}}, "r1"))
	child, _ := r.GetIn(node.Path{0, 0, 0})

	r2 := must(t)(r.ApplyDelta(node.Path{0, 0}, delta.AddBlock{AllowEmpty: true}, "r2"))
	got, _ := r2.GetIn(node.Path{0, 0})
	b := got.(*node.Block)
	if !b.AllowEmpty || b.RunID != "r2" {
		t.Errorf("block not updated: %+v", b)
	}
	if b.Len() != 1 || b.Children[0] != child {
		t.Errorf("children not carried forward")
	}
	if child.Run() != "r1" {
		t.Errorf("child restamped")
	}
}

func TestScenarioAddRowsEmptyTable(t *testing.T) {
	r := Empty()
	r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.NewElement{Payload: node.DataFrame{Table: &table.Table{}}}, "r1"))
	in := twoRows(table.RangeIndex{Start: 0, Stop: 2, Step: 1})
	r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.AddRows{Table: in}, "r1"))

	got, _ := r.GetIn(node.Path{0, 0})
	df := got.(*node.Element).Payload.(node.DataFrame)
	if df.Table != in {
		t.Errorf("incoming table not adopted verbatim")
	}
}

func TestScenarioAddRowsTwice(t *testing.T) {
	tests := []struct {
		name  string
		index func() table.Index
		want  table.Index
	}{
		{
			name:  "range",
			index: func() table.Index { return table.RangeIndex{Start: 0, Stop: 2, Step: 1} },
			want:  table.RangeIndex{Start: 0, Stop: 4, Step: 1},
		},
		{
			name:  "plain",
			index: func() table.Index { return table.PlainIndex{Values: table.Int64Column{0, 1}} },
			want:  table.PlainIndex{Values: table.Int64Column{0, 1, 0, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Empty()
			r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.NewElement{Payload: node.DataFrame{Table: &table.Table{}}}, "r1"))
			for range 2 {
				r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.AddRows{Table: twoRows(tt.index())}, "r1"))
			}
			got, _ := r.GetIn(node.Path{0, 0})
			tbl := got.(*node.Element).Payload.(node.DataFrame).Table
			if tbl.Rows() != 4 {
				t.Errorf("got %d rows, want 4", tbl.Rows())
			}
			if diff := cmp.Diff(tt.want, tbl.Index); diff != "" {
				t.Errorf("index mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddRowsErrors(t *testing.T) {
	r := Empty()
	r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.NewElement{Payload: node.DataFrame{Table: twoRows(table.RangeIndex{Stop: 2, Step: 1})}}, "r1"))
	r = must(t)(r.ApplyDelta(node.Path{0, 1}, delta.NewElement{Payload: node.Text{Body: "t"}}, "r1"))
	r = must(t)(r.ApplyDelta(node.Path{0, 2}, delta.AddBlock{}, "r1"))

	mismatched := &table.Table{
		Index:   table.RangeIndex{Stop: 1, Step: 1},
		Columns: []table.NamedColumn{{Name: "a", Data: table.StringColumn{"x"}}},
	}
	tests := []struct {
		name string
		path node.Path
		tbl  *table.Table
		err  error
	}{
		{"missing", node.Path{0, 5}, mismatched, ErrTargetNotFound},
		{"block target", node.Path{0, 2}, mismatched, ErrTargetNotFound},
		{"column kinds", node.Path{0, 0}, mismatched, table.ErrColumnKinds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := r.GetIn(tt.path)
			_, err := r.ApplyDelta(tt.path, delta.AddRows{Table: tt.tbl}, "r2")
			if !errors.Is(err, tt.err) {
				t.Fatalf("ApplyDelta() error = %v, want %v", err, tt.err)
			}
			after, _ := r.GetIn(tt.path)
			if before != after {
				t.Errorf("prior payload no longer observable")
			}
		})
	}
}

func TestApplyDeltaErrors(t *testing.T) {
	r := Empty()
	tests := []struct {
		name string
		path node.Path
		d    delta.Delta
		err  error
	}{
		{"unknown", node.Path{0, 0}, nil, ErrUnrecognizedDelta},
		{"empty path", node.Path{}, delta.AddBlock{}, ErrBadPath},
		{"no container", node.Path{2, 0}, delta.AddBlock{}, ErrBadIndex},
		{"replace container", node.Path{1}, delta.NewElement{}, ErrBadPath},
		{"past end", node.Path{0, 1}, delta.AddBlock{}, ErrBadIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.ApplyDelta(tt.path, tt.d, "r1"); !errors.Is(err, tt.err) {
				t.Errorf("ApplyDelta() error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestChartDatasets(t *testing.T) {
	name := "series"
	other := "other"
	r := Empty()
	r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.NewElement{Payload: node.Chart{Spec: "{}"}}, "r1"))
	steps := []delta.AddRows{
		{Table: twoRows(table.RangeIndex{Stop: 2, Step: 1})},
		{Table: twoRows(table.RangeIndex{Stop: 2, Step: 1})},
		{Name: &name, Table: twoRows(table.RangeIndex{Stop: 2, Step: 1})},
		{Name: &name, Table: twoRows(table.RangeIndex{Stop: 2, Step: 1})},
		{Name: &other, Table: twoRows(table.RangeIndex{Stop: 2, Step: 1})},
	}
	for _, s := range steps {
		r = must(t)(r.ApplyDelta(node.Path{0, 0}, s, "r1"))
	}
	got, _ := r.GetIn(node.Path{0, 0})
	c := got.(*node.Element).Payload.(node.Chart)
	if c.Data.Rows() != 4 {
		t.Errorf("unnamed data has %d rows, want 4", c.Data.Rows())
	}
	want := []string{"series", "other"}
	var names []string
	for _, d := range c.Datasets {
		names = append(names, d.Name)
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("datasets mismatch (-want +got):\n%s", diff)
	}
	if c.Datasets[0].Table.Rows() != 4 || c.Datasets[1].Table.Rows() != 2 {
		t.Errorf("dataset rows %d, %d", c.Datasets[0].Table.Rows(), c.Datasets[1].Table.Rows())
	}
}

func TestChartFirstDatasetFallback(t *testing.T) {
	r := Empty()
	chart := node.Chart{Datasets: []node.Dataset{{Name: "only", Table: twoRows(table.RangeIndex{Stop: 2, Step: 1})}}}
	r = must(t)(r.ApplyDelta(node.Path{1, 0}, delta.NewElement{Payload: chart}, "r1"))
	r = must(t)(r.ApplyDelta(node.Path{1, 0}, delta.AddRows{Table: twoRows(table.RangeIndex{Stop: 2, Step: 1})}, "r1"))
	got, _ := r.GetIn(node.Path{1, 0})
	c := got.(*node.Element).Payload.(node.Chart)
	if c.Data != nil || c.Datasets[0].Table.Rows() != 4 {
		t.Errorf("rows not merged into first dataset: %+v", c)
	}
	if chart.Datasets[0].Table.Rows() != 2 {
		t.Errorf("original chart modified")
	}
}

func TestClearStaleNodesRoot(t *testing.T) {
	r := Empty()
	r = must(t)(r.ApplyDelta(node.Path{0, 0}, delta.NewElement{Payload: node.Text{Body: "old"}}, "r1"))
	r = must(t)(r.ApplyDelta(node.Path{1, 0}, delta.NewElement{Payload: node.Text{Body: "old"}}, "r1"))
	r = must(t)(r.ApplyDelta(node.Path{0, 1}, delta.NewElement{Payload: node.Text{Body: "new"}}, "r2"))
	r = r.ClearStaleNodes("r2")

	if r.Main().Len() != 1 || r.Sidebar().Len() != 0 {
		t.Fatalf("main %d, sidebar %d", r.Main().Len(), r.Sidebar().Len())
	}
	for _, e := range r.Elements() {
		if e.RunID != "r2" {
			t.Errorf("stale element %+v", e.Payload)
		}
	}
	again := r.ClearStaleNodes("r2")
	if diff := cmp.Diff(r.Node(), again.Node(), ignoreCache); diff != "" {
		t.Errorf("not idempotent (-once +twice):\n%s", diff)
	}
}
