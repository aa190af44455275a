// Package pipeline feeds candidate words through a lookup capability one at
// a time and reports each outcome to an observer.
//
// The pipeline is strictly sequential: lookup i+1 is issued only after lookup
// i has returned and its outcome has been applied to the observer. Outcomes
// therefore arrive in list order and at most one lookup is ever in flight.
// Total latency is the sum of the individual lookups.
//
// There is no timeout of its own. A lookup that never returns stalls the run
// until ctx is cancelled; a lookup that fails ends the run and leaves the
// remaining words untouched (pending, from the observer's point of view).
package pipeline
