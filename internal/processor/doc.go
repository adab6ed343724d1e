// Package processor wires the resolved configuration into a dictionary
// client and a search controller, and runs one of the front ends: the
// Fyne window, the terminal UI, or a one-shot lookup printed as plain text.
package processor
