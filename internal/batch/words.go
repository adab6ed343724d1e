// Package batch reads word lists for looking several words up in one run.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadBatchFile reads the words to look up from filename
func ReadBatchFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	words, err := ParseWords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return words, nil
}

// ParseWords returns one word per line of r. Surrounding whitespace is
// trimmed; blank lines and lines starting with '#' are skipped.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
