package encode

type EncodeOption func(*EncState)

// EncState holds the settings of one encoding.
type EncState struct {
	Color  func(Attr, string) string
	indent string
	depth  int
	runIDs bool
}

func (es *EncState) color(a Attr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Depth limits the number of levels below the encoded node; zero means no
// limit.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// EncodeRunIDs controls whether run ids are written. They are by default.
func EncodeRunIDs(v bool) EncodeOption {
	return func(es *EncState) { es.runIDs = v }
}
