package wire

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/livedoc/delta"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/table"
)

const stream = `newRun:
  runId: r1
---
delta:
  path: [0, 0]
  newElement:
    dataFrame:
      data:
        index: {plain: {strings: [x, y]}}
        columns:
          - {name: a, int64s: [1, 2]}
          - {name: b, doubles: [0.5, 1.5]}
        styles:
          - [{css: "color: red"}, {}]
          - [{}, {display: "1.50"}]
---
delta:
  path: [0, 1]
  addBlock: {allowEmpty: true}
---
delta:
  path: [0, 0]
  addRows:
    name: series
    data:
      columns:
        - {name: a, timedeltas: [5]}
---
runFinished: {}
`

func TestDecodeStream(t *testing.T) {
	msgs, err := DecodeAll(strings.NewReader(stream))
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 5 {
		t.Fatalf("got %d messages, want 5", len(msgs))
	}
	if msgs[0].NewRun == nil || msgs[0].NewRun.RunID != "r1" {
		t.Errorf("newRun = %+v", msgs[0].NewRun)
	}
	if msgs[4].RunFinished == nil {
		t.Errorf("expected runFinished")
	}

	m, err := msgs[1].Delta.Message()
	if err != nil {
		t.Fatal(err)
	}
	want := &delta.Message{
		Path: node.Path{0, 0},
		Delta: delta.NewElement{Payload: node.DataFrame{Table: &table.Table{
			Index: table.PlainIndex{Values: table.StringColumn{"x", "y"}},
			Columns: []table.NamedColumn{
				{Name: "a", Data: table.Int64Column{1, 2}},
				{Name: "b", Data: table.DoubleColumn{0.5, 1.5}},
			},
			Styles: [][]table.CellStyle{
				{{CSS: "color: red"}, {}},
				{{}, {DisplayValue: "1.50"}},
			},
		}}},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Message() mismatch (-want +got):\n%s", diff)
	}

	m, err = msgs[2].Delta.Message()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(delta.Delta(delta.AddBlock{AllowEmpty: true}), m.Delta); diff != "" {
		t.Errorf("addBlock mismatch (-want +got):\n%s", diff)
	}

	m, err = msgs[3].Delta.Message()
	if err != nil {
		t.Fatal(err)
	}
	rows := m.Delta.(delta.AddRows)
	if rows.Name == nil || *rows.Name != "series" {
		t.Errorf("name = %v", rows.Name)
	}
	if diff := cmp.Diff(table.Index(table.RangeIndex{Start: 0, Stop: 1, Step: 1}), rows.Table.Index); diff != "" {
		t.Errorf("default index mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON(t *testing.T) {
	in := `{"delta": {"path": [1, 0], "newElement": {"text": {"body": "hi"}}}}`
	msgs, err := DecodeAll(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	m, err := msgs[0].Delta.Message()
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "newElement at $[1][0]" {
		t.Errorf("got %s", m)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"no kind", "delta: {path: [0]}", delta.ErrUnrecognizedDelta},
		{"two kinds", "delta: {path: [0, 0], addBlock: {}, newElement: {text: {body: x}}}", delta.ErrUnrecognizedDelta},
		{"empty element", "delta: {path: [0, 0], newElement: {}}", ErrUnknownKind},
		{"column kind", "delta: {path: [0, 0], addRows: {data: {columns: [{name: a}]}}}", ErrUnknownKind},
		{"two index kinds", "delta: {path: [0, 0], addRows: {data: {index: {int64: [1], float64: [1]}, columns: [{name: a, int64s: [1]}]}}}", ErrAmbiguous},
		{"ragged", "delta: {path: [0, 0], addRows: {data: {columns: [{name: a, int64s: [1]}, {name: b, int64s: [1, 2]}]}}}", table.ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := DecodeAll(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			_, err = msgs[0].Delta.Message()
			if !errors.Is(err, tt.err) {
				t.Errorf("Message() error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestEncodeDecodeStream(t *testing.T) {
	name := "s"
	in := []*delta.Message{
		{Path: node.Path{0, 0}, Delta: delta.NewElement{Payload: node.Chart{
			Spec:     `{"mark": "line"}`,
			Datasets: []node.Dataset{{Name: "s", Table: &table.Table{Index: table.DatetimeIndex{1, 2}, Columns: []table.NamedColumn{{Name: "t", Data: table.DatetimeColumn{3, 4}}}}}},
		}}},
		{Path: node.Path{0, 0}, Delta: delta.AddRows{Name: &name, Table: &table.Table{
			Index: table.MultiIndex{
				Levels: []table.Index{table.Int64Index{7}},
				Labels: [][]int32{{0}},
			},
			Columns: []table.NamedColumn{{Name: "t", Data: table.DatetimeColumn{5}}},
		}}},
		{Path: node.Path{1}, Delta: delta.AddBlock{}},
	}
	buf := bytes.NewBuffer(nil)
	enc := NewEncoder(buf)
	for _, m := range in {
		d, err := FromMessage(m)
		if err != nil {
			t.Fatal(err)
		}
		if err := enc.Encode(&ForwardMsg{Delta: d}); err != nil {
			t.Fatal(err)
		}
	}
	msgs, err := DecodeAll(buf)
	if err != nil {
		t.Fatal(err)
	}
	var out []*delta.Message
	for _, f := range msgs {
		m, err := f.Delta.Message()
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, m)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s\n%s", diff, buf)
	}
}

func TestJSONMessage(t *testing.T) {
	d, err := FromMessage(&delta.Message{Path: node.Path{0, 3}, Delta: delta.NewElement{Payload: node.Text{Body: "x"}}})
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalJSON(&ForwardMsg{Delta: d})
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Delta == nil || got.Delta.NewElement.Text.Body != "x" {
		t.Errorf("got %s", data)
	}
}
