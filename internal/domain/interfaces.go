//go:generate mockgen -source interfaces.go -destination ../mocks/mock_domain.go -package mocks

package domain

import "context"

// Lookuper resolves the dictionary membership of a single word. A call may
// block for as long as the underlying transport does.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (LookupResult, error)
}

// Observer receives one outcome per resolved candidate.
type Observer interface {
	MarkWord(word string)
	MarkNonWord(word string)
}

// Display is the output boundary of a finder run.
type Display interface {
	Observer

	Clear()
	SetOriginalWord(word string)
	// SetCandidates shows words (already sorted) with every entry pending.
	SetCandidates(words []string)
}

// Input is the input boundary: it blocks until the next word is submitted.
// It returns io.EOF once no further submissions can arrive.
type Input interface {
	NextWord(ctx context.Context) (string, error)
}

// Dictionary answers exact, case-sensitive whole-word membership queries.
type Dictionary interface {
	Contains(ctx context.Context, word string) (bool, error)
}
