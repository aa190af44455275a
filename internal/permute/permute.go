package permute

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/big"
	"slices"

	"gonum.org/v1/gonum/stat/combin"

	"anagram/internal/multiset"
)

// DefaultMaxSymbols bounds the candidate list at 10! = 3,628,800 entries.
const DefaultMaxSymbols = 10

// ErrTooManySymbols is returned when a word exceeds the symbol ceiling.
var ErrTooManySymbols = errors.New("too many symbols")

// Symbols decomposes s into its runes.
func Symbols(s string) []rune { return []rune(s) }

// Words yields every distinct permutation of the letters of s, in the
// enumeration order of the underlying multiset (not alphabetical).
func Words(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		ms := multiset.New(Symbols(s)...)
		for p := range ms.Permutations() {
			if !yield(string(p)) {
				return
			}
		}
	}
}

// maxPrealloc caps the capacity Candidates reserves up front.
const maxPrealloc = 1 << 16

// smallBinomialLog is ln(2^40). Below it combin.Binomial's running product
// stays well inside an int.
const smallBinomialLog = 40 * math.Ln2

// Count returns the number of distinct permutations of s, the multinomial
// coefficient n!/(m1!*...*mk!). It saturates at math.MaxInt when the count
// does not fit in an int.
func Count(s string) int {
	n, ok := count(s)
	if !ok {
		return math.MaxInt
	}
	return n
}

func count(s string) (int, bool) {
	ms := multiset.New(Symbols(s)...)
	remaining := ms.Size()
	n := 1
	for r := range ms.UniqueValues() {
		k := ms.Count(r)
		f, ok := binomial(remaining, k)
		if !ok || n > math.MaxInt/f {
			return 0, false
		}
		n *= f
		remaining -= k
	}
	return n, true
}

// binomial reports false when C(n, k) overflows an int.
func binomial(n, k int) (int, bool) {
	if combin.LogGeneralizedBinomial(float64(n), float64(k)) < smallBinomialLog {
		return combin.Binomial(n, k), true
	}
	b := new(big.Int).Binomial(int64(n), int64(k))
	if !b.IsInt64() || b.Int64() > math.MaxInt {
		return 0, false
	}
	return int(b.Int64()), true
}

// Candidates materialises Words(s). A maxSymbols of 0 disables the ceiling.
func Candidates(s string, maxSymbols int) ([]string, error) {
	if n := len(Symbols(s)); maxSymbols > 0 && n > maxSymbols {
		return nil, fmt.Errorf("%q has %d symbols, limit is %d: %w", s, n, maxSymbols, ErrTooManySymbols)
	}
	n, ok := count(s)
	if !ok {
		return nil, fmt.Errorf("%q has more permutations than fit in memory: %w", s, ErrTooManySymbols)
	}
	out := make([]string, 0, min(n, maxPrealloc))
	for w := range Words(s) {
		out = append(out, w)
	}
	return out, nil
}

// Sorted returns the candidates of s in lexicographic order.
func Sorted(s string, maxSymbols int) ([]string, error) {
	words, err := Candidates(s, maxSymbols)
	if err != nil {
		return nil, err
	}
	slices.Sort(words)
	return words, nil
}
