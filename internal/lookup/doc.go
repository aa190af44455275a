// Package lookup provides the capabilities a finder run uses to decide whether
// a candidate is a word.
//
// Stub never decides, Local asks an in-process dictionary, and HTTP asks a
// lookupd service over GET /lookup. Cached and Instrumented decorate any of
// them.
package lookup
