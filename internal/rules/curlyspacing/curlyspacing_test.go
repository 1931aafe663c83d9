package curlyspacing

import (
	"reflect"
	"testing"

	"github.com/artursvonda/jsxlint/internal/findings"
	"github.com/artursvonda/jsxlint/internal/jsxtree"
)

func TestPolicyFromOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		want    Policy
	}{
		{name: "empty", options: nil, want: PolicyUnspecified},
		{name: "always", options: []string{"always"}, want: PolicyAlways},
		{name: "never", options: []string{"never"}, want: PolicyNever},
		{name: "both always wins", options: []string{"never", "always"}, want: PolicyAlways},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolicyFromOptions(tt.options); got != tt.want {
				t.Errorf("PolicyFromOptions(%v) = %s, want %s", tt.options, got, tt.want)
			}
		})
	}
}

func container(offset int, text string) jsxtree.Node {
	return jsxtree.Node{Kind: jsxtree.KindExpressionContainer, Offset: offset, Text: text}
}

func TestCheckExpressionContainer(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		text    string
		want    string // expected failure string, empty for no finding
	}{
		{name: "unspecified spaced", options: nil, text: "{ foo }", want: ""},
		{name: "unspecified tight", options: nil, text: "{foo}", want: ""},
		{name: "unspecified lopsided", options: nil, text: "{foo }", want: ""},

		{name: "always spaced", options: []string{"always"}, text: "{ foo }", want: ""},
		{name: "always tight", options: []string{"always"}, text: "{foo}", want: AlwaysFailureString},
		{name: "always leading only", options: []string{"always"}, text: "{ foo}", want: AlwaysFailureString},
		{name: "always trailing only", options: []string{"always"}, text: "{foo }", want: AlwaysFailureString},
		{name: "always multiline body", options: []string{"always"}, text: "{\n  render()\n}", want: ""},
		{name: "always empty braces", options: []string{"always"}, text: "{}", want: AlwaysFailureString},

		{name: "never tight", options: []string{"never"}, text: "{foo}", want: ""},
		{name: "never spaced", options: []string{"never"}, text: "{ foo }", want: NeverFailureString},
		{name: "never leading only", options: []string{"never"}, text: "{ foo}", want: NeverFailureString},
		{name: "never trailing only", options: []string{"never"}, text: "{foo }", want: NeverFailureString},
		{name: "never multiline hugging", options: []string{"never"}, text: "{\n  foo\n}", want: ""},
		{name: "never multiline content", options: []string{"never"}, text: "{foo(\n  bar,\n)}", want: ""},
		{name: "never empty braces", options: []string{"never"}, text: "{}", want: NeverFailureString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(tt.options)
			got := c.CheckExpressionContainer(container(3, tt.text))

			if tt.want == "" {
				if len(got) != 0 {
					t.Fatalf("expected no findings, got %v", got)
				}
				return
			}

			if len(got) != 1 {
				t.Fatalf("expected exactly one finding, got %v", got)
			}
			want := findings.Finding{
				Rule:    RuleName,
				Offset:  3,
				Width:   len(tt.text),
				Message: tt.want,
			}
			if got[0] != want {
				t.Errorf("got %+v, want %+v", got[0], want)
			}
		})
	}
}

func TestCheckExpressionContainerDegenerateForms(t *testing.T) {
	// The host parser hands over these partial spread representations
	// as container text. They must never produce a finding.
	degenerate := []string{"{", "{...", "{ ..."}

	for _, options := range [][]string{nil, {"always"}, {"never"}} {
		c := NewChecker(options)
		for _, text := range degenerate {
			if got := c.CheckExpressionContainer(container(0, text)); len(got) != 0 {
				t.Errorf("policy %s, text %q: expected no findings, got %v", c.Policy(), text, got)
			}
		}
	}
}

func TestCheckElementSpreads(t *testing.T) {
	src := `prefix <div { ...props } {...rest}>{bar}</div>`
	elementOffset := 7
	element := jsxtree.Node{
		Kind:   jsxtree.KindElement,
		Offset: elementOffset,
		Text:   src[elementOffset:],
	}

	c := NewChecker([]string{"never"})
	got := c.CheckElementSpreads(element)

	if len(got) != 1 {
		t.Fatalf("expected exactly one finding, got %v", got)
	}

	want := findings.Finding{
		Rule:    RuleName,
		Offset:  elementOffset + 5,
		Width:   len("{ ...props }"),
		Message: NeverFailureString,
	}
	if got[0] != want {
		t.Fatalf("got %+v, want %+v", got[0], want)
	}

	// Round-trip: re-slicing the source at the finding's span must
	// reproduce the exact matched substring.
	if slice := got[0].Slice(src); slice != "{ ...props }" {
		t.Errorf("finding span reproduces %q, want %q", slice, "{ ...props }")
	}
}

func TestCheckElementSpreadsIndependentMatches(t *testing.T) {
	text := `<a { ...x } b={v} { ...y.z }/>`
	element := jsxtree.Node{Kind: jsxtree.KindSelfClosingElement, Offset: 0, Text: text}

	c := NewChecker([]string{"never"})
	got := c.CheckElementSpreads(element)

	if len(got) != 2 {
		t.Fatalf("expected two findings, got %v", got)
	}
	for _, f := range got {
		if f.Slice(text) != text[f.Offset:f.End()] || f.Message != NeverFailureString {
			t.Errorf("bad finding %+v", f)
		}
	}
	if got[0].Slice(text) != "{ ...x }" || got[1].Slice(text) != "{ ...y.z }" {
		t.Errorf("matched %q and %q, want the two spread spans", got[0].Slice(text), got[1].Slice(text))
	}
}

func TestCheckElementSpreadsAlways(t *testing.T) {
	text := `<a {...props}/>`
	element := jsxtree.Node{Kind: jsxtree.KindSelfClosingElement, Offset: 0, Text: text}

	c := NewChecker([]string{"always"})
	got := c.CheckElementSpreads(element)

	if len(got) != 1 || got[0].Message != AlwaysFailureString {
		t.Fatalf("expected one always-failure finding, got %v", got)
	}
	if got[0].Slice(text) != "{...props}" {
		t.Errorf("finding covers %q, want %q", got[0].Slice(text), "{...props}")
	}
}

func TestCheckerIdempotence(t *testing.T) {
	element := jsxtree.Node{
		Kind:   jsxtree.KindElement,
		Offset: 4,
		Text:   `<div { ...props }>{ bar }</div>`,
	}

	c := NewChecker([]string{"never"})
	first := c.CheckElementSpreads(element)
	second := c.CheckElementSpreads(element)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated checks diverge: %v vs %v", first, second)
	}
}
