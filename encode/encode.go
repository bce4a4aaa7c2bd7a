package encode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/report"
)

// Encode writes an outline of n to w.
func Encode(n node.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	bw := bufio.NewWriter(w)
	es.node(bw, n, node.Path{}, 0)
	return bw.Flush()
}

// EncodeRoot writes an outline of both containers of r to w.
func EncodeRoot(r *report.Root, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	bw := bufio.NewWriter(w)
	names := []string{"main", "sidebar"}
	for i, c := range r.Node().Children {
		bw.WriteString(es.color(BlockColor, names[i]))
		es.blockAttrs(bw, c.(*node.Block))
		bw.WriteByte('\n')
		for j, cc := range c.(*node.Block).Children {
			es.node(bw, cc, node.Path{i, j}, 1)
		}
	}
	return bw.Flush()
}

// MustString returns the outline of r.
func MustString(r *report.Root, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeRoot(r, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: "  ", runIDs: true}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) node(w *bufio.Writer, n node.Node, path node.Path, level int) {
	w.WriteString(strings.Repeat(es.indent, level))
	w.WriteString(es.color(PathColor, path.String()))
	w.WriteByte(' ')
	switch x := n.(type) {
	case *node.Block:
		w.WriteString(es.color(BlockColor, "block"))
		es.blockAttrs(w, x)
		w.WriteByte('\n')
		if es.depth > 0 && level >= es.depth {
			return
		}
		for i, c := range x.Children {
			es.node(w, c, path.Append(i), level+1)
		}
	case *node.Element:
		sum := x.Summary()
		w.WriteString(es.color(KindColor, sum.Kind.String()))
		switch p := x.Payload.(type) {
		case node.Text:
			w.WriteByte(' ')
			w.WriteString(es.color(ValueColor, strconv.Quote(p.Body)))
		case node.DataFrame, node.Chart:
			fmt.Fprintf(w, " %s", es.color(ValueColor, fmt.Sprintf("tables=%d rows=%d cols=%d", sum.Tables, sum.Rows, sum.Columns)))
		}
		es.run(w, x.RunID)
		w.WriteByte('\n')
	}
}

func (es *EncState) blockAttrs(w *bufio.Writer, b *node.Block) {
	if b.AllowEmpty {
		w.WriteString(es.color(SepColor, " allowEmpty"))
	}
	es.run(w, b.RunID)
}

func (es *EncState) run(w *bufio.Writer, r node.RunID) {
	if !es.runIDs {
		return
	}
	w.WriteString(es.color(RunColor, " run="+r.String()))
}
