package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/livedoc/delta"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/report"
	"github.com/signadot/livedoc/table"
)

func sample(t *testing.T) *report.Root {
	t.Helper()
	frame := func(n int, cols ...string) *table.Table {
		res := &table.Table{Index: table.RangeIndex{Stop: int64(n), Step: 1}}
		for _, c := range cols {
			data := make(table.DoubleColumn, n)
			res.Columns = append(res.Columns, table.NamedColumn{Name: c, Data: data})
		}
		return res
	}
	steps := []struct {
		path node.Path
		d    delta.Delta
		run  node.RunID
	}{
		{node.Path{0, 0}, delta.NewElement{Payload: node.Text{Body: "title"}}, "r1"},
		{node.Path{0, 1}, delta.NewElement{Payload: node.DataFrame{Table: frame(3, "a", "b")}}, "r1"},
		{node.Path{0, 2}, delta.NewElement{Payload: node.Chart{Spec: "line", Datasets: []node.Dataset{
			{Name: "s", Table: frame(12, "latency")},
		}}}, "r2"},
		{node.Path{1, 0}, delta.NewElement{Payload: node.Empty{}}, "r2"},
	}
	r := report.Empty()
	for _, s := range steps {
		var err error
		if r, err = r.ApplyDelta(s.path, s.d, s.run); err != nil {
			t.Fatal(err)
		}
	}
	return r
}

func TestSelect(t *testing.T) {
	r := sample(t)
	tests := []struct {
		src  string
		want []string
	}{
		{`true`, []string{"$[0][0]", "$[0][1]", "$[0][2]", "$[1][0]"}},
		{`kind == "text"`, []string{"$[0][0]"}},
		{`rows > 10`, []string{"$[0][2]"}},
		{`hasColumn("b")`, []string{"$[0][1]"}},
		{`"s" in datasets`, []string{"$[0][2]"}},
		{`runId == "r2" && path startsWith "$[1]"`, []string{"$[1][0]"}},
		{`text contains "it"`, []string{"$[0][0]"}},
		{`tables == 1 && len(columns) == 2`, []string{"$[0][1]"}},
		{`false`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			q, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			res, err := Select(r, q)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, x := range res {
				got = append(got, x.Path.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Select(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestSelectAll(t *testing.T) {
	r := sample(t)
	res, err := Select(r, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 4 {
		t.Fatalf("Select(nil) returned %d results, want 4", len(res))
	}
	for _, x := range res {
		n, ok := r.GetIn(x.Path)
		if !ok || n != node.Node(x.Element) {
			t.Errorf("result at %s is not the element at that path", x.Path)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`rows +`, `rows`, `nosuch == 1`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) succeeded", src)
		}
	}
}
