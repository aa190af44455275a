// Package input implements the input boundary of the finder: "await the
// next submitted word".
//
// Lines reads one word per line from an io.Reader and prints a prompt when it
// is ready for a submission. Static replays a fixed list of words, which is
// how words given on the command line are fed to the finder.
package input
