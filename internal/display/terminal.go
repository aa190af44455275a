package display

import (
	"fmt"
	"io"
	"sync"

	"anagram/internal/domain"
)

// Terminal writes the progress of each run to w and mirrors it on a Board.
//
//	== cat (6 candidates) ==
//	  act: Unknown
//	  ...
//	  act: WORD
//	  atc: NOT A WORD
type Terminal struct {
	mu    sync.Mutex
	w     io.Writer
	board *Board
	// Quiet suppresses the pending list, printing only outcomes.
	Quiet bool
}

var _ domain.Display = (*Terminal)(nil)

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, board: NewBoard()}
}

// Board returns the state mirrored by the terminal.
func (t *Terminal) Board() *Board { return t.board }

func (t *Terminal) Clear() {
	t.board.Clear()
}

func (t *Terminal) SetOriginalWord(word string) {
	t.board.SetOriginalWord(word)
}

func (t *Terminal) SetCandidates(words []string) {
	t.board.SetCandidates(words)
	snap := t.board.Snapshot()

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "== %s (%d candidates) ==\n", snap.OriginalWord, len(snap.Entries))
	if t.Quiet {
		return
	}
	for _, e := range snap.Entries {
		t.line(e.Word, e.Status)
	}
}

func (t *Terminal) MarkWord(word string) {
	t.board.MarkWord(word)
	t.print(word, domain.StatusWord)
}

func (t *Terminal) MarkNonWord(word string) {
	t.board.MarkNonWord(word)
	t.print(word, domain.StatusNonWord)
}

func (t *Terminal) print(word string, s domain.Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.line(word, s)
}

func (t *Terminal) line(word string, s domain.Status) {
	fmt.Fprintf(t.w, "  %s: %s\n", word, s)
}
