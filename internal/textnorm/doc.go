// Package textnorm canonicalizes free-form brand and product strings.
//
// The primary use cases are:
//   - Deriving filename/handle-safe slugs from noisy product names
//   - Folding brand synonyms and spelling variants into canonical brand names
//   - Splitting combined "name + brand" strings into their parts
//
// Every function is total over arbitrary text input: unparseable input
// degrades to the most conservative structured result (empty brand, verbatim
// name) rather than an error. Brand tables are immutable after construction
// so tests can supply isolated fixtures.
package textnorm
