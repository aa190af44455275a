// Package commands defines the anagram CLI and wires dependencies for subcommands.
//
// Commands
//
//   - find           Read words and look up every distinct permutation
//   - permute        Print the distinct permutations of a word
//   - lookup         Look up words directly
//   - dict compile   Compile a word list into a DAWG index
//   - dict fingerprint  Print the fingerprint of a word list
//
// # Implementation
//
// The root command reads the configuration (flags, ANAGRAM_* environment
// variables, config.yaml) and builds the logger before any subcommand runs.
// Subcommands then build what they need through internal/app.
package commands
