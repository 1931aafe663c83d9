// Package findings defines the diagnostic record every rule produces
// and the little shared vocabulary around it. Rules return findings,
// the traversal engine concatenates them, the driver prints them;
// nothing here performs I/O.
package findings

import "fmt"

// Finding represents a single rule violation. Offset and Width delimit
// the half-open byte span [Offset, Offset+Width) in the file's source
// text; Message is one of the rule's fixed failure strings.
type Finding struct {
	Rule    string
	Offset  int
	Width   int
	Message string
}

// End returns the exclusive end offset of the finding's span.
func (f Finding) End() int {
	return f.Offset + f.Width
}

// String renders the finding in the compact form used by the CLI output.
func (f Finding) String() string {
	return fmt.Sprintf("%d:%d: %s (%s)", f.Offset, f.Width, f.Message, f.Rule)
}

// Slice reproduces the exact source text the finding covers. It is the
// round-trip counterpart of the (Offset, Width) span: for a correctly
// positioned finding, Slice returns the violating substring verbatim.
func (f Finding) Slice(src string) string {
	if f.Offset < 0 || f.End() > len(src) {
		return ""
	}
	return src[f.Offset:f.End()]
}
