package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"anagram/internal/domain"
)

// DefaultPrompt is printed whenever Lines is enabled.
const DefaultPrompt = "word> "

// Lines reads submissions line by line. A line is submitted verbatim without
// its "\n" or "\r\n" terminator; an empty line is the empty word.
//
// Lines is enabled only while NextWord is waiting. With DisableAfterSubmit
// unset it stays enabled after a submission until the next call.
type Lines struct {
	Prompt             string
	DisableAfterSubmit bool

	mu      sync.Mutex
	out     io.Writer
	lines   chan lineResult
	start   sync.Once
	src     *bufio.Scanner
	enabled bool
}

type lineResult struct {
	text string
	err  error
}

var _ domain.Input = (*Lines)(nil)

// NewLines reads from r and writes prompts to out (which may be nil).
func NewLines(r io.Reader, out io.Writer) *Lines {
	return &Lines{
		Prompt:             DefaultPrompt,
		DisableAfterSubmit: true,
		out:                out,
		src:                bufio.NewScanner(r),
		lines:              make(chan lineResult),
	}
}

// NextWord blocks until a line is submitted, ctx is cancelled, or the reader
// is exhausted (io.EOF).
func (l *Lines) NextWord(ctx context.Context) (string, error) {
	l.start.Do(func() { go l.scan() })
	l.enable()

	select {
	case <-ctx.Done():
		l.disable()
		return "", ctx.Err()
	case res, ok := <-l.lines:
		if l.DisableAfterSubmit || !ok || res.err != nil {
			l.disable()
		}
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", fmt.Errorf("reading input: %w", res.err)
		}
		return res.text, nil
	}
}

// Enabled reports whether the boundary currently accepts a submission.
func (l *Lines) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *Lines) enable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = true
	if l.out != nil && l.Prompt != "" {
		fmt.Fprint(l.out, l.Prompt)
	}
}

func (l *Lines) disable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
}

// scan runs on its own goroutine so NextWord can honour ctx while the
// underlying read blocks. Each line is handed over only when a NextWord call
// is waiting for it.
func (l *Lines) scan() {
	defer close(l.lines)
	for l.src.Scan() {
		l.lines <- lineResult{text: l.src.Text()}
	}
	if err := l.src.Err(); err != nil {
		l.lines <- lineResult{err: err}
	}
}
