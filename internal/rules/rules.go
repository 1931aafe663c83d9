package rules

import (
	"fmt"
	"slices"
	"sort"

	"github.com/artursvonda/jsxlint/internal/jsxtree"
)

// Rule is one lint rule bound to its configured options.
type Rule interface {
	// Name returns the rule's configuration identifier.
	Name() string

	// Doc returns the rule's documentation.
	Doc() string

	// Handlers maps node kinds to the checks the traversal engine
	// runs for them.
	Handlers() map[jsxtree.NodeKind]jsxtree.Handler
}

// OptionsSchema restricts the option tokens a rule accepts.
type OptionsSchema struct {
	Enum     []string
	MaxItems int
}

// Validate rejects option lists the schema does not allow.
func (s OptionsSchema) Validate(options []string) error {
	if s.MaxItems > 0 && len(options) > s.MaxItems {
		return fmt.Errorf("at most %d options allowed, got %d", s.MaxItems, len(options))
	}

	for _, opt := range options {
		if !slices.Contains(s.Enum, opt) {
			return fmt.Errorf("unknown option %q, allowed values are %v", opt, s.Enum)
		}
	}

	return nil
}

// Metadata describes a rule to the registry and to documentation output.
type Metadata struct {
	Name        string
	Description string
	Rationale   string
	Options     OptionsSchema
}

// Factory builds a rule instance from an already validated option list.
type Factory func(options []string) Rule

type registryEntry struct {
	meta    Metadata
	factory Factory
}

var registry = map[string]registryEntry{}

// Register adds a rule to the global registry. Rules register
// themselves from package init; a duplicate name is a programming
// error and panics.
func Register(meta Metadata, factory Factory) {
	if _, ok := registry[meta.Name]; ok {
		panic(fmt.Sprintf("rule %q registered twice", meta.Name))
	}

	registry[meta.Name] = registryEntry{meta: meta, factory: factory}
}

// New validates options against the named rule's schema and builds the
// rule instance.
func New(name string, options []string) (Rule, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q", name)
	}

	if err := e.meta.Options.Validate(options); err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}

	return e.factory(options), nil
}

// Describe returns the registered metadata for a rule name.
func Describe(name string) (Metadata, bool) {
	e, ok := registry[name]
	return e.meta, ok
}

// Names lists every registered rule in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
