package input

import (
	"context"
	"io"
	"sync"

	"anagram/internal/domain"
)

// Static submits a fixed list of words, then reports io.EOF.
type Static struct {
	mu    sync.Mutex
	words []string
}

var _ domain.Input = (*Static)(nil)

func NewStatic(words ...string) *Static {
	return &Static{words: words}
}

func (s *Static) NextWord(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.words) == 0 {
		return "", io.EOF
	}
	w := s.words[0]
	s.words = s.words[1:]
	return w, nil
}
