// Package lint wires the pieces together: it instantiates the
// configured rules and runs them over source files, producing one
// ordered finding list per file.
package lint

import (
	"fmt"
	"os"
	"sort"

	"github.com/artursvonda/jsxlint/internal/config"
	"github.com/artursvonda/jsxlint/internal/findings"
	"github.com/artursvonda/jsxlint/internal/jsxtree"
	"github.com/artursvonda/jsxlint/internal/rules"
)

// Linter holds instantiated rules ready to run over any number of
// files. It is immutable after New, so one Linter may serve
// concurrent per-file runs without coordination.
type Linter struct {
	rules []rules.Rule
}

// New builds a linter from a validated configuration. Rules run in
// lexical name order for deterministic output.
func New(cfg *config.Config) (*Linter, error) {
	names := make([]string, 0, len(cfg.Rules))
	for name := range cfg.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	l := &Linter{}
	for _, name := range names {
		rule, err := rules.New(name, cfg.Rules[name].Options)
		if err != nil {
			return nil, err
		}

		l.rules = append(l.rules, rule)
	}

	return l, nil
}

// LintSource checks one file's text and returns its findings ordered
// by position. Running it twice over the same source yields identical
// lists.
func (l *Linter) LintSource(src string) []findings.Finding {
	tree := jsxtree.Scan(src)

	var out []findings.Finding
	for _, rule := range l.rules {
		out = append(out, jsxtree.Walk(tree, rule.Handlers())...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})

	return out
}

// LintFile reads path and checks its contents.
func (l *Linter) LintFile(path string) ([]findings.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return l.LintSource(string(data)), nil
}
