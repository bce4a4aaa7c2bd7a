package encode

import (
	"encoding/json"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/report"
	"github.com/signadot/livedoc/table"
)

type jsonRoot struct {
	Main    *jsonNode `json:"main"`
	Sidebar *jsonNode `json:"sidebar"`
}

// jsonNode keys children by position so that merge patches address
// individual nodes instead of replacing whole child lists.
type jsonNode struct {
	Kind       string               `json:"kind"`
	RunID      string               `json:"runId,omitempty"`
	AllowEmpty bool                 `json:"allowEmpty,omitempty"`
	Children   map[string]*jsonNode `json:"children,omitempty"`
	Len        int                  `json:"len,omitempty"`
	Text       *string              `json:"text,omitempty"`
	Spec       string               `json:"spec,omitempty"`
	Tables     []jsonTable          `json:"tables,omitempty"`
}

type jsonTable struct {
	Name    string       `json:"name,omitempty"`
	Index   string       `json:"index"`
	Rows    int          `json:"rows"`
	Columns []jsonColumn `json:"columns"`
}

type jsonColumn struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// JSON returns a JSON view of r.
func JSON(r *report.Root) ([]byte, error) {
	return json.Marshal(&jsonRoot{
		Main:    toJSON(r.Main()),
		Sidebar: toJSON(r.Sidebar()),
	})
}

// MergePatch returns the JSON merge patch from the view of from to the
// view of to.
func MergePatch(from, to *report.Root) ([]byte, error) {
	a, err := JSON(from)
	if err != nil {
		return nil, err
	}
	b, err := JSON(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

func toJSON(n node.Node) *jsonNode {
	switch x := n.(type) {
	case *node.Block:
		res := &jsonNode{
			Kind:       "block",
			RunID:      string(x.RunID),
			AllowEmpty: x.AllowEmpty,
			Len:        len(x.Children),
		}
		if len(x.Children) != 0 {
			res.Children = make(map[string]*jsonNode, len(x.Children))
			for i, c := range x.Children {
				res.Children[strconv.Itoa(i)] = toJSON(c)
			}
		}
		return res
	case *node.Element:
		res := &jsonNode{
			Kind:  node.KindOf(x.Payload).String(),
			RunID: string(x.RunID),
		}
		switch p := x.Payload.(type) {
		case node.Text:
			res.Text = &p.Body
		case node.DataFrame:
			if p.Table != nil {
				res.Tables = []jsonTable{tableJSON("", p.Table)}
			}
		case node.Chart:
			res.Spec = p.Spec
			if p.Data != nil {
				res.Tables = append(res.Tables, tableJSON("", p.Data))
			}
			for _, ds := range p.Datasets {
				res.Tables = append(res.Tables, tableJSON(ds.Name, ds.Table))
			}
		}
		return res
	default:
		return nil
	}
}

func tableJSON(name string, t *table.Table) jsonTable {
	res := jsonTable{Name: name, Rows: t.Rows(), Columns: []jsonColumn{}}
	if t == nil {
		return res
	}
	if t.Index != nil {
		res.Index = t.Index.Kind().String()
	}
	for _, c := range t.Columns {
		jc := jsonColumn{Name: c.Name}
		if c.Data != nil {
			jc.Kind = c.Data.Kind().String()
		}
		res.Columns = append(res.Columns, jc)
	}
	return res
}
