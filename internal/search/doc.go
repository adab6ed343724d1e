// Package search holds the word search behaviour shared by the GUI, the
// terminal UI and one-shot lookups: the input, the submit operation and the
// state a front end renders after it.
package search
