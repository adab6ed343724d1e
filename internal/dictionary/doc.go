// Package dictionary is a client for the public Free Dictionary API
// (dictionaryapi.dev). It fetches entries for a word and validates that the
// response carries the meanings and phonetics the rest of the application
// renders.
package dictionary
