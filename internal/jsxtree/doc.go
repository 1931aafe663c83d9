// Package jsxtree provides the markup-side syntax tree the rules run
// against: a flat, document-ordered list of JSX nodes with exact byte
// spans into the original source, plus the dispatch that hands each
// node to the handlers a rule registered for its kind.
//
// The scanner here is deliberately pragmatic. It is not a TypeScript
// parser: it recognizes the markup subset the rules care about
// (elements, self-closing elements, attributes, embedded-expression
// containers) and skips everything else. Malformed or unterminated
// constructs are abandoned without producing nodes; scanning never
// fails, it just yields fewer nodes.
//
// Two behaviors mirror the host parsers these rules historically ran
// under and are relied upon by the rule implementations:
//
//   - A spread attribute ({...props}) never produces an
//     expression-container node covering the spread. Instead a
//     degenerate container holding just the opening brace is emitted
//     at the brace's offset. Spread spacing is checked textually at
//     the element level.
//
//   - Every node's Text is the exact source slice at [Offset,
//     Offset+Width); re-slicing the source at a node's span always
//     reproduces its text.
package jsxtree
