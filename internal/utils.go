package internal

import (
	"path"
	"strings"
)

// Version is the application version shown in the window title and --version
const Version = "0.3.1"

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' || r == '.' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ClipFilename derives a cache filename from a pronunciation clip URL,
// e.g. ".../pronunciations/en/hello-au.mp3" becomes "hello-au.mp3"
func ClipFilename(clipURL string) string {
	if i := strings.IndexAny(clipURL, "?#"); i >= 0 {
		clipURL = clipURL[:i]
	}
	base := path.Base(clipURL)
	if base == "." || base == "/" || base == "" {
		return "clip"
	}
	return SanitizeFilename(base)
}

// isAlphaNumeric checks if a rune is alphanumeric
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
