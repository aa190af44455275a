// Package permute turns a word into its distinct letter permutations.
//
// A word is decomposed into runes with no case or Unicode normalisation, so
// "Tac" keeps its capital T in every candidate. The empty word has exactly
// one permutation, the empty string.
//
// The number of candidates grows factorially with the word length. Candidates
// enforces a ceiling on the number of symbols (DefaultMaxSymbols unless the
// caller chooses otherwise) and returns ErrTooManySymbols above it.
package permute
