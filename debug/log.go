package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/livedoc/encode"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/report"
)

// Root renders a report root as an outline when formatted with %v or %s.
type Root struct{ *report.Root }

func (r Root) String() string {
	if r.Root == nil {
		return "<nil root>"
	}
	return encode.MustString(r.Root)
}

// Logf writes to stderr. Roots and nodes among args are rendered as
// outlines, maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *report.Root:
			args[i] = Root{x}.String()
		case *node.Block, *node.Element:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x.(node.Node), buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
