package node

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node by the child index taken at each level from the
// root.
type Path []int

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, i := range p {
		fmt.Fprintf(buf, "[%d]", i)
	}
	return buf.String()
}

// Append returns a new path with i added. p is not modified.
func (p Path) Append(i int) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, i)
}

func (p Path) HasPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	for i := range q {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func (p Path) Equal(q Path) bool {
	return len(p) == len(q) && p.HasPrefix(q)
}

// ParsePath parses the text form of a path, such as "$[0][2]".
func ParsePath(s string) (Path, error) {
	if len(s) == 0 || s[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrBadPath, s)
	}
	frag := s[1:]
	res := Path{}
	for len(frag) != 0 {
		if frag[0] != '[' {
			return nil, fmt.Errorf("%w: %q: expected '['", ErrBadPath, s)
		}
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return nil, fmt.Errorf("%w: %q: expected '[' <index> ']'", ErrBadPath, s)
		}
		u64, err := strconv.ParseUint(frag[1:i], 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, s, err)
		}
		res = append(res, int(u64))
		frag = frag[i+1:]
	}
	return res, nil
}
