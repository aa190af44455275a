// Package dictionary answers exact, case-sensitive whole-line membership
// queries against a newline-delimited word list.
//
// Backends:
//   - Grep runs grep -Fqx against the list on every query.
//   - Memory holds the list in a set.
//   - Index queries a compiled DAWG file, built once with CompileIndex.
//
// Cached wraps any of them with a bounded result cache. Fingerprint gives the
// short content hash that lookupd reports for its list.
package dictionary
