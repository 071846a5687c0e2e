package confee

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLine tests tokenizing single lines
func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		delim    rune
		expected Pair
	}{
		{"Simple", "log: stdout", ':', Pair{"log", "stdout"}},
		{"NoSpaces", "log:stdout", ':', Pair{"log", "stdout"}},
		{"SurroundingWhitespace", "  port \t:  8080  ", ':', Pair{"port", "8080"}},
		{"DelimiterInValue", "addr: 127.0.0.1:8080", ':', Pair{"addr", "127.0.0.1:8080"}},
		{"EmptyValue", "empty:", ':', Pair{"empty", ""}},
		{"WhitespaceValue", "empty:    ", ':', Pair{"empty", ""}},
		{"InnerWhitespaceKept", "motd: hello  world", ':', Pair{"motd", "hello  world"}},
		{"EqualsDelimiter", "dir = ./example/", '=', Pair{"dir", "./example/"}},
		{"OtherDelimiterIgnored", "url=http://host:80", '=', Pair{"url", "http://host:80"}},
		{"CaseKept", "LogLevel: Debug", ':', Pair{"LogLevel", "Debug"}},
		{"UnicodeDelimiter", "name→value", '→', Pair{"name", "value"}},
		{"SpaceDelimiter", "port 8080", ' ', Pair{"port", "8080"}},
		{"SpaceDelimiterIndented", "   port    8080  ", ' ', Pair{"port", "8080"}},
		{"SpaceDelimiterInValue", "motd hello  world", ' ', Pair{"motd", "hello  world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := ParseLine(tt.line, tt.delim)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pair)
		})
	}
}

// TestParseLineErrors tests the malformed line cases
func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{"Empty", "", "empty line"},
		{"WhitespaceOnly", "   \t", "empty line"},
		{"MissingDelimiter", "log stdout", "missing delimiter"},
		{"EmptyKey", ": stdout", "empty key"},
		{"WhitespaceKey", "   : stdout", "empty key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line, ':')
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLine)

			var lineErr *LineError
			require.True(t, errors.As(err, &lineErr))
			assert.Equal(t, 0, lineErr.Line)
			assert.Equal(t, tt.line, lineErr.Content)
			assert.Contains(t, lineErr.Reason, tt.reason)
		})
	}

	t.Run("InvalidDelimiter", func(t *testing.T) {
		for _, delim := range []rune{'\t', '\n', '\r', 0, '\x07', utf8.RuneError} {
			_, err := ParseLine("a: b", delim)
			assert.ErrorIs(t, err, ErrInvalidDelim, "delimiter %q", delim)
		}
	})

	t.Run("SpaceDelimiterWithoutSpace", func(t *testing.T) {
		_, err := ParseLine("port\t8080", ' ')
		assert.ErrorIs(t, err, ErrMalformedLine)
	})
}
