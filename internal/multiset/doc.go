// Package multiset implements a counted bag of comparable values and the
// enumeration of its distinct permutations.
//
// Permutations branches only over the unique values still present, so a bag
// holding n values with multiplicities m1..mk yields exactly n!/(m1!*...*mk!)
// arrangements with no deduplication set. Enumeration mutates the bag while
// it runs (decrement, recurse, restore) and always leaves it as it found it,
// including when the consumer stops early.
//
// Unique values are enumerated in first-seen order. A value whose count drops
// to zero is removed from the counts but keeps its position, so restoring it
// restores the enumeration order as well.
package multiset
