// Package domain holds the anagram finder's vocabulary: lookup results and
// membership, per-candidate display states, and the Lookuper, Observer,
// Display, Input and Dictionary boundaries the finder is assembled from.
package domain
