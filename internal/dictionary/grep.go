package dictionary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sync/singleflight"
)

// Grep checks membership by running grep -Fqx against the word list, one
// process per query. Identical concurrent queries share a process.
type Grep struct {
	path  string
	bin   string
	group singleflight.Group
}

var _ Dictionary = (*Grep)(nil)

// NewGrep checks that path is readable and that grep is on PATH.
func NewGrep(path string) (*Grep, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("word list: %w", err)
	}
	bin, err := exec.LookPath("grep")
	if err != nil {
		return nil, fmt.Errorf("grep backend: %w", err)
	}
	return &Grep{path: path, bin: bin}, nil
}

// Contains maps grep's exit status 0 to true and 1 to false. Any other
// outcome is an error. A shared process outlives the cancellation of any one
// caller; each caller stops waiting when its own ctx is done.
func (g *Grep) Contains(ctx context.Context, word string) (bool, error) {
	if !matchable(word) {
		return false, nil
	}
	ch := g.group.DoChan(word, func() (any, error) {
		return g.run(context.WithoutCancel(ctx), word)
	})
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return false, res.Err
		}
		return res.Val.(bool), nil
	}
}

func (g *Grep) run(ctx context.Context, word string) (bool, error) {
	cmd := exec.CommandContext(ctx, g.bin, "-Fqx", "--", word, g.path)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	return false, fmt.Errorf("grep %q: %w", word, err)
}
