package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/livedoc/node"
)

var ignoreCache = cmpopts.IgnoreUnexported(node.Element{})

func text(s string, r node.RunID) *node.Element {
	return node.NewElement(node.Text{Body: s}, r)
}

func block(r node.RunID, allowEmpty bool, children ...node.Node) *node.Block {
	return node.NewBlock(children, allowEmpty, r)
}

// fixture is
//
//	$        block
//	$[0]     block
//	$[0][0]  text a
//	$[0][1]  block
//	$[0][1][0] text b
//	$[1]     text c
func fixture() node.Node {
	return block("r1", true,
		block("r1", true,
			text("a", "r1"),
			block("r1", false, text("b", "r1")),
		),
		text("c", "r0"),
	)
}

func allPaths(n node.Node) []node.Path {
	var res []node.Path
	Walk(n, node.Path{}, func(p node.Path, _ node.Node) bool {
		if len(p) != 0 {
			res = append(res, p)
		}
		return true
	})
	return res
}

func TestGetIn(t *testing.T) {
	root := fixture()
	tests := []struct {
		path node.Path
		text string
		ok   bool
	}{
		{node.Path{0, 0}, "a", true},
		{node.Path{0, 1, 0}, "b", true},
		{node.Path{1}, "c", true},
		{node.Path{2}, "", false},
		{node.Path{0, 5}, "", false},
		{node.Path{1, 0}, "", false},
		{node.Path{-1}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			got, ok := GetIn(root, tt.path)
			if ok != tt.ok {
				t.Fatalf("GetIn() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if body := got.(*node.Element).Payload.(node.Text).Body; body != tt.text {
				t.Errorf("got %q, want %q", body, tt.text)
			}
		})
	}
	if got, ok := GetIn(root, nil); !ok || got != root {
		t.Errorf("empty path should return the root")
	}
}

func TestSetInRoundTrip(t *testing.T) {
	root := fixture()
	for _, p := range allPaths(root) {
		t.Run(p.String(), func(t *testing.T) {
			repl := text("new", "r2")
			res, err := SetIn(root, p, repl, "r2")
			if err != nil {
				t.Fatal(err)
			}
			got, ok := GetIn(res, p)
			if !ok || got != repl {
				t.Errorf("GetIn(SetIn()) = %v, want replacement", got)
			}
		})
	}
}

func TestSetInStructuralSharing(t *testing.T) {
	root := fixture()
	paths := allPaths(root)
	for _, p := range paths {
		res, err := SetIn(root, p, text("new", "r2"), "r2")
		if err != nil {
			t.Fatal(err)
		}
		for _, q := range paths {
			if p.HasPrefix(q) || q.HasPrefix(p) {
				continue
			}
			before, _ := GetIn(root, q)
			after, ok := GetIn(res, q)
			if !ok || before != after {
				t.Errorf("set %s: node at %s not shared", p, q)
			}
		}
	}
}

func TestSetInLeavesInputUnchanged(t *testing.T) {
	root := fixture()
	want := fixture()
	if _, err := SetIn(root, node.Path{0, 1, 1}, text("x", "r2"), "r2"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, root, ignoreCache); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestSetInAppendAndStamp(t *testing.T) {
	root := fixture()
	res, err := SetIn(root, node.Path{0, 2}, text("d", "r2"), "r2")
	if err != nil {
		t.Fatal(err)
	}
	b := res.(*node.Block)
	if b.RunID != "r2" || b.Children[0].Run() != "r2" {
		t.Errorf("blocks along path not stamped")
	}
	if b.Children[0].(*node.Block).Len() != 3 {
		t.Errorf("expected append")
	}
	if got, _ := GetIn(res, node.Path{0, 1}); got.Run() != "r1" {
		t.Errorf("sibling restamped")
	}
}

func TestSetInErrors(t *testing.T) {
	root := fixture()
	tests := []struct {
		name string
		path node.Path
		err  error
	}{
		{"empty", node.Path{}, ErrBadPath},
		{"past append", node.Path{0, 3}, ErrBadIndex},
		{"negative", node.Path{-1}, ErrBadIndex},
		{"through element", node.Path{1, 0}, ErrBadPath},
		{"missing intermediate", node.Path{0, 2, 0}, ErrBadPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SetIn(root, tt.path, text("x", "r2"), "r2")
			if !errors.Is(err, tt.err) {
				t.Errorf("SetIn() error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestClearStaleNodes(t *testing.T) {
	root := block("r2", true,
		block("r2", true,
			text("a", "r1"),
			text("b", "r2"),
			block("r1", false, text("c", "r1")),
			block("r1", true),
		),
		text("d", "r1"),
	)
	got, ok := ClearStaleNodes(root, "r2")
	if !ok {
		t.Fatal("root pruned")
	}
	want := block("r2", true,
		block("r2", true,
			text("b", "r2"),
			block("r2", true),
		),
	)
	if diff := cmp.Diff(want, got, ignoreCache, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ClearStaleNodes() mismatch (-want +got):\n%s", diff)
	}
}

func TestClearStaleNodesProperties(t *testing.T) {
	root := fixture()
	for _, rid := range []node.RunID{"r0", "r1", "r2"} {
		once, ok := ClearStaleNodes(root, rid)
		if !ok {
			t.Fatalf("%s: root pruned", rid)
		}
		twice, _ := ClearStaleNodes(once, rid)
		if diff := cmp.Diff(once, twice, ignoreCache); diff != "" {
			t.Errorf("%s: not idempotent (-once +twice):\n%s", rid, diff)
		}
		for _, e := range Elements(once) {
			if e.RunID != rid {
				t.Errorf("%s: stale element %v survived", rid, e.Payload)
			}
		}
	}
}

func TestClearStaleNodesKeepsElementIdentity(t *testing.T) {
	a := text("a", "r1")
	got, _ := ClearStaleNodes(block("r1", true, a), "r1")
	if got.(*node.Block).Children[0] != a {
		t.Errorf("surviving element was copied")
	}
}

func TestElements(t *testing.T) {
	var bodies []string
	for _, e := range Elements(fixture()) {
		bodies = append(bodies, e.Payload.(node.Text).Body)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, bodies); diff != "" {
		t.Errorf("Elements() mismatch (-want +got):\n%s", diff)
	}
}
