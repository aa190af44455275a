package display

import (
	"slices"
	"sync"

	"anagram/internal/domain"
)

// Entry is one candidate and its current state.
type Entry struct {
	Word   string
	Status domain.Status
}

// Snapshot is a copy of a board's state.
type Snapshot struct {
	OriginalWord string
	Entries      []Entry
}

// Status returns the state of word, and whether it is on the board.
func (s Snapshot) Status(word string) (domain.Status, bool) {
	for _, e := range s.Entries {
		if e.Word == word {
			return e.Status, true
		}
	}
	return domain.StatusPending, false
}

// Words returns the candidates in display order.
func (s Snapshot) Words() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Word
	}
	return out
}

// Board is an in-memory Display. It is safe for concurrent use.
type Board struct {
	mu       sync.Mutex
	original string
	words    []string
	status   map[string]domain.Status
}

var _ domain.Display = (*Board)(nil)

func NewBoard() *Board {
	return &Board{status: make(map[string]domain.Status)}
}

func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.original = ""
	b.words = nil
	clear(b.status)
}

func (b *Board) SetOriginalWord(word string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.original = word
}

// SetCandidates replaces the candidate list. Every word starts pending.
// Words are kept sorted.
func (b *Board) SetCandidates(words []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.words = slices.Sorted(slices.Values(words))
	clear(b.status)
	for _, w := range b.words {
		b.status[w] = domain.StatusPending
	}
}

func (b *Board) MarkWord(word string) { b.mark(word, domain.StatusWord) }

func (b *Board) MarkNonWord(word string) { b.mark(word, domain.StatusNonWord) }

// mark ignores words that are not on the board.
func (b *Board) mark(word string, s domain.Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.status[word]; ok {
		b.status[word] = s
	}
}

// Snapshot returns a copy of the current state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	snap := Snapshot{
		OriginalWord: b.original,
		Entries:      make([]Entry, len(b.words)),
	}
	for i, w := range b.words {
		snap.Entries[i] = Entry{Word: w, Status: b.status[w]}
	}
	return snap
}
