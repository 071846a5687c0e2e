package confee

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDocument tests tokenizing whole documents
func TestParseDocument(t *testing.T) {
	t.Run("ReferenceFile", func(t *testing.T) {
		content := "log: stdout\ndir: ./example/\naddr: 127.0.0.1\nport: 8080\n"

		pairs, err := ParseDocument([]byte(content), ':')
		require.NoError(t, err)
		assert.Equal(t, []Pair{
			{"log", "stdout"},
			{"dir", "./example/"},
			{"addr", "127.0.0.1"},
			{"port", "8080"},
		}, pairs)
	})

	t.Run("BlankLinesIgnored", func(t *testing.T) {
		plain := "a: 1\nb: 2\nc: 3"
		padded := "\n\n  \na: 1\n\t\nb: 2\n\n\nc: 3\n   \n"

		expected, err := ParseDocument([]byte(plain), ':')
		require.NoError(t, err)
		actual, err := ParseDocument([]byte(padded), ':')
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("CRLF", func(t *testing.T) {
		pairs, err := ParseDocument([]byte("a: 1\r\nb: 2\r\n\r\n"), ':')
		require.NoError(t, err)
		assert.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, pairs)
	})

	t.Run("NoTrailingNewline", func(t *testing.T) {
		pairs, err := ParseDocument([]byte("a: 1"), ':')
		require.NoError(t, err)
		assert.Equal(t, []Pair{{"a", "1"}}, pairs)
	})

	t.Run("Empty", func(t *testing.T) {
		pairs, err := ParseDocument(nil, ':')
		require.NoError(t, err)
		assert.Empty(t, pairs)

		pairs, err = ParseDocument([]byte("\n \n"), ':')
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})

	t.Run("DuplicatesKeptInOrder", func(t *testing.T) {
		pairs, err := ParseDocument([]byte("k: first\nk: second\n"), ':')
		require.NoError(t, err)
		assert.Equal(t, []Pair{{"k", "first"}, {"k", "second"}}, pairs)
	})

	t.Run("MalformedLineAborts", func(t *testing.T) {
		content := "a: 1\n\nthis line has no delimiter\nb: 2\n"

		pairs, err := ParseDocument([]byte(content), ':')
		require.Error(t, err)
		assert.Nil(t, pairs)
		assert.ErrorIs(t, err, ErrMalformedLine)

		var lineErr *LineError
		require.True(t, errors.As(err, &lineErr))
		assert.Equal(t, 3, lineErr.Line)
		assert.Equal(t, "this line has no delimiter", lineErr.Content)
		assert.Contains(t, err.Error(), "malformed line 3")
	})

	t.Run("EmptyKeyAborts", func(t *testing.T) {
		_, err := ParseDocument([]byte("a: 1\n: orphan\n"), ':')

		var lineErr *LineError
		require.True(t, errors.As(err, &lineErr))
		assert.Equal(t, 2, lineErr.Line)
		assert.Equal(t, "empty key", lineErr.Reason)
	})

	t.Run("InvalidDelimiter", func(t *testing.T) {
		_, err := ParseDocument([]byte("a\t1"), '\t')
		assert.ErrorIs(t, err, ErrInvalidDelim)
	})

	t.Run("SpaceDelimiter", func(t *testing.T) {
		pairs, err := ParseDocument([]byte("log stdout\n  dir ./example/\naddr 127.0.0.1\n"), ' ')
		require.NoError(t, err)
		assert.Equal(t, []Pair{{"log", "stdout"}, {"dir", "./example/"}, {"addr", "127.0.0.1"}}, pairs)
	})

	t.Run("ByteOrderMark", func(t *testing.T) {
		pairs, err := ParseDocument([]byte("\ufeffport: 8080\nlog: stdout\n"), ':')
		require.NoError(t, err)
		assert.Equal(t, []Pair{{"port", "8080"}, {"log", "stdout"}}, pairs)
	})

	t.Run("ByteOrderMarkOnlyAtStart", func(t *testing.T) {
		pairs, err := ParseDocument([]byte("a: 1\n\ufeffb: 2\n"), ':')
		require.NoError(t, err)
		assert.Equal(t, "\ufeffb", pairs[1].Key)
	})
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{""}, splitLines("\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb\n"))
	assert.Equal(t, []string{"a", "b "}, splitLines("a\r\nb \r\n"))
}
