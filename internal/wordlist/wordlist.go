// Package wordlist reads word lists and registers the embedded word packs.
//
// A word list is plain text with one word per line. Lines are trimmed, blank
// lines and lines starting with '#' are skipped, and words are uppercased.
// Every word must consist of letters only.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrEmpty is returned when a source contains no words.
var ErrEmpty = errors.New("wordlist: no words")

// Parse reads one word per line from r.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := validate(line); err != nil {
			return nil, fmt.Errorf("wordlist: line %d: %w", lineNo, err)
		}
		words = append(words, strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]string, error) {
	return Parse(strings.NewReader(s))
}

// LoadFile reads a word list from disk.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

func validate(word string) error {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("word %q contains non-letter %q", word, r)
		}
	}
	return nil
}
