// Package display implements the output boundary of the finder.
//
// Board keeps the state of the current run in memory: the original word, the
// sorted candidate list and one Status per candidate. Terminal renders the
// same state as lines of text on an io.Writer as outcomes arrive.
package display
