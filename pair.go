package confee

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDelim separates keys from values when no delimiter is configured
const DefaultDelim = ':'

// Pair is a single key and its raw, unconverted value
type Pair struct {
	Key   string
	Value string
}

// ParseLine splits line at the first occurrence of delim.
// Key and value are trimmed of surrounding whitespace; an empty value is valid.
// The line itself is trimmed before splitting, so with a space delimiter
// "  port   8080 " yields port/8080: leading indentation never produces an empty key.
// Empty lines, lines without delim and lines with an empty key return a *LineError.
func ParseLine(line string, delim rune) (Pair, error) {
	if err := validateDelim(delim); err != nil {
		return Pair{}, err
	}
	return parseLine(line, delim)
}

// parseLine assumes delim has already been validated
func parseLine(line string, delim rune) (Pair, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Pair{}, &LineError{Content: line, Reason: "empty line"}
	}

	key, value, found := strings.Cut(trimmed, string(delim))
	if !found {
		return Pair{}, &LineError{Content: line, Reason: fmt.Sprintf("missing delimiter %q", delim)}
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return Pair{}, &LineError{Content: line, Reason: "empty key"}
	}

	return Pair{Key: key, Value: strings.TrimSpace(value)}, nil
}

// validateDelim accepts any single printable character, including ' '.
// Tab, newline and other control characters are not printable.
func validateDelim(delim rune) error {
	if delim == utf8.RuneError || !unicode.IsPrint(delim) {
		return fmt.Errorf("%w: %q", ErrInvalidDelim, delim)
	}
	return nil
}
