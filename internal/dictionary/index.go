package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/smhanov/dawg"
)

var ErrIndexClosed = errors.New("dictionary: index is closed")

// Index answers queries from a compiled DAWG. Open indexes read the file in
// place.
type Index struct {
	mu     sync.RWMutex
	finder dawg.Finder
}

var _ Dictionary = (*Index)(nil)

// BuildIndex compiles words into an in-memory index. Order and duplicates
// do not matter.
func BuildIndex(words []string) *Index {
	return &Index{finder: build(words).Finish()}
}

// CompileIndex reads the word list r and writes its compiled index to path.
// It returns the number of distinct words indexed.
func CompileIndex(r io.Reader, path string) (int, error) {
	var words []string
	if err := readLines(r, func(line string) { words = append(words, line) }); err != nil {
		return 0, fmt.Errorf("reading word list: %w", err)
	}

	b := build(words)
	n := b.Finish().NumAdded()

	err := writeFileAtomic(path, 0o644, func(w io.Writer) error {
		_, err := b.Write(w)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("writing index %s: %w", path, err)
	}
	return n, nil
}

// CompileIndexFile compiles the word list at listPath into indexPath.
func CompileIndexFile(listPath, indexPath string) (int, error) {
	f, err := openList(listPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return CompileIndex(f, indexPath)
}

// OpenIndex opens an index written by CompileIndex.
func OpenIndex(path string) (*Index, error) {
	finder, err := dawg.Load(path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	return &Index{finder: finder}, nil
}

// OpenOrCompileIndex opens indexPath, compiling it from listPath first when
// it is missing.
func OpenOrCompileIndex(listPath, indexPath string) (*Index, error) {
	if _, err := os.Stat(indexPath); errors.Is(err, os.ErrNotExist) {
		if _, err := CompileIndexFile(listPath, indexPath); err != nil {
			return nil, err
		}
	}
	return OpenIndex(indexPath)
}

func (ix *Index) Contains(ctx context.Context, word string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.finder == nil {
		return false, ErrIndexClosed
	}
	if !matchable(word) {
		return false, nil
	}
	return ix.finder.IndexOf(word) >= 0, nil
}

// Len returns the number of distinct words indexed.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.finder == nil {
		return 0
	}
	return ix.finder.NumAdded()
}

func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.finder == nil {
		return nil
	}
	err := ix.finder.Close()
	ix.finder = nil
	return err
}

// build adds the distinct words in strictly increasing order, as the DAWG
// builder requires.
func build(words []string) dawg.Builder {
	b := dawg.New()
	for _, w := range slices.Compact(slices.Sorted(slices.Values(words))) {
		b.Add(w)
	}
	return b
}
