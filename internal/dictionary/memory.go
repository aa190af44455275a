package dictionary

import (
	"context"
	"fmt"
	"io"
)

// Memory is an in-memory word set. It is safe for concurrent use once built.
type Memory struct {
	words map[string]struct{}
}

var _ Dictionary = (*Memory)(nil)

func NewMemory(words ...string) *Memory {
	m := &Memory{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		m.words[w] = struct{}{}
	}
	return m
}

// LoadMemory reads one word per line from r.
func LoadMemory(r io.Reader) (*Memory, error) {
	m := NewMemory()
	if err := readLines(r, func(line string) { m.words[line] = struct{}{} }); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return m, nil
}

// LoadMemoryFile loads the word list at path.
func LoadMemoryFile(path string) (*Memory, error) {
	f, err := openList(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadMemory(f)
}

func (m *Memory) Contains(ctx context.Context, word string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := m.words[word]
	return ok, nil
}

// Len returns the number of distinct words.
func (m *Memory) Len() int { return len(m.words) }
