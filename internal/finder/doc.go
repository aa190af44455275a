// Package finder drives the anagram finder: it waits for a word, enumerates
// its distinct permutations, resets the display and feeds the candidates
// through the sequential lookup pipeline before accepting the next word.
//
// Every boundary (input, display, lookup) is passed to New, so tests can
// substitute doubles for any of them. A run always completes, fails, or is
// cancelled before the next word is requested; nothing carries over between
// runs.
package finder
