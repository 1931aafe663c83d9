package jsxtree

import (
	"sort"
	"strings"
)

// Scan builds the markup tree for one source file. Anything that does
// not shape up as a well-formed element is skipped; Scan itself never
// fails.
func Scan(src string) *Tree {
	s := &scanner{src: src}

	pos := 0
	for pos < len(src) {
		if src[pos] == '<' && pos+1 < len(src) && isNameStart(src[pos+1]) {
			if end, ok := s.scanElement(pos); ok {
				pos = end
				continue
			}
		}
		pos++
	}

	// Document order: ascending offset, enclosing spans first.
	sort.SliceStable(s.nodes, func(i, j int) bool {
		if s.nodes[i].Offset != s.nodes[j].Offset {
			return s.nodes[i].Offset < s.nodes[j].Offset
		}
		return len(s.nodes[i].Text) > len(s.nodes[j].Text)
	})

	return &Tree{Source: src, Nodes: s.nodes}
}

type scanner struct {
	src   string
	nodes []Node
}

func (s *scanner) emit(kind NodeKind, start, end int) {
	s.nodes = append(s.nodes, Node{Kind: kind, Offset: start, Text: s.src[start:end]})
}

// scanElement parses an element starting at the '<' of its opening tag
// and returns the position just past the element. On failure every node
// collected inside the attempt is dropped.
func (s *scanner) scanElement(start int) (int, bool) {
	mark := len(s.nodes)

	tag, pos, ok := s.scanName(start + 1)
	if !ok {
		return 0, false
	}

	pos, selfClosing, ok := s.scanAttributes(pos)
	if !ok {
		s.nodes = s.nodes[:mark]
		return 0, false
	}

	if selfClosing {
		s.emit(KindSelfClosingElement, start, pos)
		return pos, true
	}

	end, ok := s.scanChildren(pos, tag)
	if !ok {
		s.nodes = s.nodes[:mark]
		return 0, false
	}

	s.emit(KindElement, start, end)
	return end, true
}

// scanAttributes consumes everything between the tag name and the
// closing '>' or '/>'. It emits attribute nodes and, for brace-valued
// attributes, expression-container nodes.
func (s *scanner) scanAttributes(pos int) (newPos int, selfClosing bool, ok bool) {
	for pos < len(s.src) {
		pos = skipSpace(s.src, pos)
		if pos >= len(s.src) {
			return 0, false, false
		}

		switch {
		case strings.HasPrefix(s.src[pos:], "/>"):
			return pos + 2, true, true

		case s.src[pos] == '>':
			return pos + 1, false, true

		case s.src[pos] == '{':
			// Spread attribute or a stray container in attribute position.
			end, braceOK := s.scanBraced(pos)
			if !braceOK {
				return 0, false, false
			}
			if isSpreadText(s.src[pos:end]) {
				// Host parser quirk: spreads surface as a degenerate
				// container covering just the opening brace. The
				// element-level spread scan owns the real span.
				s.emit(KindExpressionContainer, pos, pos+1)
			} else {
				s.emit(KindExpressionContainer, pos, end)
			}
			pos = end

		case isNameStart(s.src[pos]):
			var attrOK bool
			pos, attrOK = s.scanAttribute(pos)
			if !attrOK {
				return 0, false, false
			}

		default:
			return 0, false, false
		}
	}

	return 0, false, false
}

// scanAttribute consumes one name or name=value pair and emits its node.
func (s *scanner) scanAttribute(start int) (int, bool) {
	_, pos, ok := s.scanName(start)
	if !ok {
		return 0, false
	}

	if pos < len(s.src) && s.src[pos] == '=' {
		pos++
		if pos >= len(s.src) {
			return 0, false
		}

		switch s.src[pos] {
		case '"', '\'':
			end, ok := scanQuoted(s.src, pos)
			if !ok {
				return 0, false
			}
			pos = end

		case '{':
			end, ok := s.scanBraced(pos)
			if !ok {
				return 0, false
			}
			s.emit(KindExpressionContainer, pos, end)
			pos = end

		default:
			return 0, false
		}
	}

	s.emit(KindAttribute, start, pos)
	return pos, true
}

// scanChildren consumes element content up to and including the
// matching close tag, emitting nodes for nested elements and
// expression containers along the way.
func (s *scanner) scanChildren(pos int, tag string) (int, bool) {
	for pos < len(s.src) {
		switch {
		case strings.HasPrefix(s.src[pos:], "</"):
			name, p, ok := s.scanName(pos + 2)
			if !ok {
				return 0, false
			}
			p = skipSpace(s.src, p)
			if p >= len(s.src) || s.src[p] != '>' || name != tag {
				return 0, false
			}
			return p + 1, true

		case s.src[pos] == '<' && pos+1 < len(s.src) && isNameStart(s.src[pos+1]):
			end, ok := s.scanElement(pos)
			if !ok {
				return 0, false
			}
			pos = end

		case s.src[pos] == '{':
			end, ok := s.scanBraced(pos)
			if !ok {
				return 0, false
			}
			s.emit(KindExpressionContainer, pos, end)
			pos = end

		default:
			pos++
		}
	}

	return 0, false
}

// scanBraced consumes a brace-delimited span starting at '{', tracking
// nested braces, string literals, and elements embedded in the
// expression. Returns the position just past the matching '}'.
func (s *scanner) scanBraced(start int) (int, bool) {
	depth := 0
	pos := start
	for pos < len(s.src) {
		switch s.src[pos] {
		case '{':
			depth++

		case '}':
			depth--
			if depth == 0 {
				return pos + 1, true
			}

		case '"', '\'', '`':
			end, ok := scanQuoted(s.src, pos)
			if !ok {
				return 0, false
			}
			pos = end
			continue

		case '<':
			if pos+1 < len(s.src) && isNameStart(s.src[pos+1]) {
				if end, ok := s.scanElement(pos); ok {
					pos = end
					continue
				}
			}
		}
		pos++
	}

	return 0, false
}

// scanName consumes a tag or attribute name.
func (s *scanner) scanName(start int) (string, int, bool) {
	if start >= len(s.src) || !isNameStart(s.src[start]) {
		return "", 0, false
	}

	pos := start + 1
	for pos < len(s.src) && isNameChar(s.src[pos]) {
		pos++
	}

	return s.src[start:pos], pos, true
}

// scanQuoted consumes a quoted literal starting at its opening quote,
// honoring backslash escapes. Returns the position just past the
// closing quote.
func scanQuoted(src string, start int) (int, bool) {
	quote := src[start]
	pos := start + 1
	for pos < len(src) {
		switch src[pos] {
		case '\\':
			pos++
		case quote:
			return pos + 1, true
		}
		pos++
	}

	return 0, false
}

// isSpreadText reports whether a brace-delimited span opens a spread:
// '{' followed by optional whitespace and three dots.
func isSpreadText(text string) bool {
	body := strings.TrimLeft(text[1:], " \t\r\n")
	return strings.HasPrefix(body, "...")
}

func skipSpace(src string, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '.' || c == '-' || c == ':'
}
