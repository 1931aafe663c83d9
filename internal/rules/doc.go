// Package rules is the single source of truth for rule identity.
//
// Every rule registers itself here with its metadata: the name used in
// configuration files, human-readable description and rationale, and
// the schema restricting the option tokens it accepts. The registry is
// what the configuration layer validates against and what the lint
// engine instantiates rules from.
//
// Option validation happens at registry level, before a rule is built.
// Rule implementations therefore assume their option lists contain
// only tokens their schema enumerates.
package rules
