// FILE: lixenwraith/confee/errors.go
package confee

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is matched by every *LineError
	ErrMalformedLine = errors.New("malformed line")
	// ErrKeyNotFound is matched by every *KeyError
	ErrKeyNotFound = errors.New("key not found")
	// ErrConversionFailed is matched by every *ConversionError
	ErrConversionFailed = errors.New("conversion failed")
	// ErrEmptyKey indicates a default pair with an empty key
	ErrEmptyKey = errors.New("empty key")
	// ErrInvalidDelim indicates a delimiter that is not a single printable character
	ErrInvalidDelim = errors.New("invalid delimiter")
	// ErrNoSource indicates Update was called before WithSource
	ErrNoSource = errors.New("no configuration source set")
	// ErrUnknownFormat indicates a defaults file whose format could not be determined
	ErrUnknownFormat = errors.New("unknown file format")
	// ErrUnrepresentable is matched by every *SaveError
	ErrUnrepresentable = errors.New("pair cannot be written in line format")
)

// LineError reports a line that could not be tokenized.
// Line is 1-based within a document, 0 for a standalone ParseLine call.
type LineError struct {
	Line    int
	Content string
	Reason  string
}

func (e *LineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed line %d %q: %s", e.Line, e.Content, e.Reason)
	}
	return fmt.Sprintf("malformed line %q: %s", e.Content, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedLine)
func (e *LineError) Unwrap() error {
	return ErrMalformedLine
}

// KeyError reports a lookup of an absent key
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %s", e.Key)
}

// Unwrap allows errors.Is(err, ErrKeyNotFound)
func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}

// ConversionError reports a raw value that could not be converted to the requested type.
// Cause holds the underlying parse error.
type ConversionError struct {
	Key   string
	Value string
	Type  string
	Cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert value %q of key %s to %s: %v", e.Value, e.Key, e.Type, e.Cause)
}

// Is matches ErrConversionFailed
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversionFailed
}

// Unwrap returns the underlying parse error
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// SaveError reports a pair that Save refuses because Update would not read it back unchanged
type SaveError struct {
	Key    string
	Reason string
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("cannot save key %q: %s", e.Key, e.Reason)
}

// Unwrap allows errors.Is(err, ErrUnrepresentable)
func (e *SaveError) Unwrap() error {
	return ErrUnrepresentable
}
