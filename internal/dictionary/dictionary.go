package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"anagram/internal/domain"
)

// DefaultPath is the system word list.
const DefaultPath = "/usr/share/dict/words"

// Dictionary is re-exported so callers need not import domain.
type Dictionary = domain.Dictionary

// Backend names a Dictionary implementation.
type Backend string

const (
	BackendGrep   Backend = "grep"
	BackendMemory Backend = "memory"
	BackendIndex  Backend = "index"
)

func (b Backend) Valid() bool {
	switch b {
	case BackendGrep, BackendMemory, BackendIndex:
		return true
	}
	return false
}

// matchable reports whether word could ever equal a whole line.
func matchable(word string) bool {
	return !strings.ContainsAny(word, "\n")
}

// readLines calls fn for every line of r without its "\n". Nothing else is
// stripped, so a "\r" stays part of the line just as it does for grep -x.
func readLines(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			fn(strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func openList(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	return f, nil
}
