package confee

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte("\ufeff")

// ParseDocument tokenizes every line of content with delim.
// Blank lines are skipped. The first malformed line aborts the whole parse and no
// pairs are returned. Pairs keep document order, so folding them in order makes the
// last occurrence of a duplicate key win. A leading UTF-8 byte order mark is dropped.
func ParseDocument(content []byte, delim rune) ([]Pair, error) {
	if err := validateDelim(delim); err != nil {
		return nil, err
	}

	lines := splitLines(string(bytes.TrimPrefix(content, utf8BOM)))
	pairs := make([]Pair, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		pair, err := parseLine(line, delim)
		if err != nil {
			if lineErr, ok := err.(*LineError); ok {
				lineErr.Line = i + 1
			}
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

// splitLines splits on "\n" and drops a trailing "\r" from each line
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	// A terminating newline does not start a new line
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
