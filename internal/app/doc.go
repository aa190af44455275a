// Package app wires application dependencies for the anagram binaries.
//
// It reads Config through viper, then builds the concrete dictionary, lookup
// capability, display, input and finder from it, exposing them via the Wire
// struct for commands to use.
package app
