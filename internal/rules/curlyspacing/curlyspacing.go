// Package curlyspacing implements the jsx-curly-spacing rule. It
// checks whitespace immediately inside the braces of JSX embedded
// expressions and spread attributes against a configured policy.
package curlyspacing

import (
	"fmt"
	"regexp"

	"github.com/artursvonda/jsxlint/internal/findings"
	"github.com/artursvonda/jsxlint/internal/jsxtree"
	"github.com/artursvonda/jsxlint/internal/rules"
)

// RuleName is the identifier used in configuration files.
const RuleName = "jsx-curly-spacing"

// Option tokens the rule recognizes.
const (
	OptionAlways = "always"
	OptionNever  = "never"
)

// Fixed failure strings; findings carry exactly one of these.
const (
	AlwaysFailureString = "Curly braces should always have spaces inside"
	NeverFailureString  = "Curly braces should never have spaces inside"
)

// Policy is the configured spacing requirement.
type Policy int

const (
	// PolicyUnspecified enforces nothing: every expression is valid.
	PolicyUnspecified Policy = iota

	// PolicyAlways requires whitespace immediately inside both braces.
	PolicyAlways

	// PolicyNever forbids whitespace immediately inside either brace.
	PolicyNever
)

var policyNames = map[Policy]string{
	PolicyUnspecified: "unspecified",
	PolicyAlways:      OptionAlways,
	PolicyNever:       OptionNever,
}

func (p Policy) String() string {
	v, ok := policyNames[p]
	if !ok {
		return fmt.Sprintf("invalid(%d)", int(p))
	}

	return v
}

// PolicyFromOptions derives the effective policy from a validated
// option list. "always" takes precedence when both tokens are present;
// an empty list means no spacing constraint at all.
func PolicyFromOptions(options []string) Policy {
	policy := PolicyUnspecified
	for _, opt := range options {
		switch opt {
		case OptionAlways:
			return PolicyAlways
		case OptionNever:
			policy = PolicyNever
		}
	}

	return policy
}

var (
	// alwaysValid: at least one whitespace character right after the
	// opening brace and at least one right before the closing one.
	// Newline plus indentation counts, so multi-line bodies satisfy
	// the policy without a literal space next to either brace.
	alwaysValid = regexp.MustCompile(`(?s)^\{\s.*\s\}$`)

	// neverValid: the first and last visible interior characters hug
	// the braces. A lone newline with indentation is tolerated at
	// either boundary, keeping multi-line expressions writable.
	neverValid = regexp.MustCompile(`(?s)^\{(\n[ \t]*)?\S(.*\S)?(\n[ \t]*)?\}$`)

	// spreadPattern locates spread attributes textually within an
	// element's span. Purely textual on purpose: spreads never get
	// their own container node from the host parser.
	spreadPattern = regexp.MustCompile(`\{\s*\.\.\.[\w.]+\s*\}`)
)

// degenerateSpreadOpeners are the partial spread forms the host parser
// hands over as expression-container text. The element-level spread
// scan owns the real span, so these must never be classified here.
var degenerateSpreadOpeners = map[string]bool{
	"{":     true,
	"{...":  true,
	"{ ...": true,
}

// Checker holds the immutable policy for one analysis run. It keeps no
// other state, so independent instances may check files concurrently.
type Checker struct {
	policy Policy
}

// NewChecker builds a checker from a validated option list.
func NewChecker(options []string) *Checker {
	return &Checker{policy: PolicyFromOptions(options)}
}

// Policy returns the effective policy of this checker.
func (c *Checker) Policy() Policy {
	return c.policy
}

// Name implements rules.Rule.
func (c *Checker) Name() string {
	return RuleName
}

// Doc implements rules.Rule.
func (c *Checker) Doc() string {
	return metadata.Description
}

// Handlers implements rules.Rule.
func (c *Checker) Handlers() map[jsxtree.NodeKind]jsxtree.Handler {
	return map[jsxtree.NodeKind]jsxtree.Handler{
		jsxtree.KindExpressionContainer: c.CheckExpressionContainer,
		jsxtree.KindElement:             c.CheckElementSpreads,
		jsxtree.KindSelfClosingElement:  c.CheckElementSpreads,
	}
}

// CheckExpressionContainer classifies a single embedded-expression
// node. Degenerate spread-opener texts are skipped outright.
func (c *Checker) CheckExpressionContainer(node jsxtree.Node) []findings.Finding {
	if degenerateSpreadOpeners[node.Text] {
		return nil
	}

	if c.valid(node.Text) {
		return nil
	}

	return []findings.Finding{c.failure(node.Offset, node.Width())}
}

// CheckElementSpreads scans an element's full text for spread
// attributes and classifies each match independently. Offsets are
// absolute: element start plus the match's offset within the text.
func (c *Checker) CheckElementSpreads(node jsxtree.Node) []findings.Finding {
	var out []findings.Finding
	for _, span := range spreadPattern.FindAllStringIndex(node.Text, -1) {
		if c.valid(node.Text[span[0]:span[1]]) {
			continue
		}

		out = append(out, c.failure(node.Offset+span[0], span[1]-span[0]))
	}

	return out
}

// valid classifies a brace-delimited text span against the policy.
// Anything that fits neither the valid shape nor a special case is a
// violation, never an error.
func (c *Checker) valid(text string) bool {
	switch c.policy {
	case PolicyAlways:
		return alwaysValid.MatchString(text)
	case PolicyNever:
		return neverValid.MatchString(text)
	default:
		return true
	}
}

func (c *Checker) failure(offset, width int) findings.Finding {
	msg := AlwaysFailureString
	if c.policy == PolicyNever {
		msg = NeverFailureString
	}

	return findings.Finding{
		Rule:    RuleName,
		Offset:  offset,
		Width:   width,
		Message: msg,
	}
}

var metadata = rules.Metadata{
	Name:        RuleName,
	Description: "Checks JSX curly brace spacing",
	Rationale:   "Consistent spacing inside embedded expressions keeps markup readable.",
	Options: rules.OptionsSchema{
		Enum: []string{OptionAlways, OptionNever},
		// Historical schema shape: up to seven entries, though only
		// the two enumerated tokens carry meaning.
		MaxItems: 7,
	},
}

func init() {
	rules.Register(metadata, func(options []string) rules.Rule {
		return NewChecker(options)
	})
}
