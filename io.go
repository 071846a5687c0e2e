// File: lixenwraith/confee/io.go
package confee

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes the store to path in the line format using the store delimiter,
// so that a later Update from the same file reproduces the current values.
// Pairs that would not survive that round trip are refused with a *SaveError
// and nothing is written. The file is replaced atomically.
func (c *Conf) Save(path string) error {
	delim := c.Delim()
	if err := validateDelim(delim); err != nil {
		return err
	}

	for _, p := range c.Pairs() {
		if reason := unsaveable(p, delim); reason != "" {
			return &SaveError{Key: p.Key, Reason: reason}
		}
	}

	return replaceFile(path, []byte(c.String()))
}

// unsaveable returns why p cannot be written and read back unchanged, or ""
func unsaveable(p Pair, delim rune) string {
	switch {
	case strings.ContainsAny(p.Key, "\r\n"):
		return "key contains a line break"
	case strings.ContainsAny(p.Value, "\r\n"):
		return "value contains a line break"
	case strings.ContainsRune(p.Key, delim):
		return fmt.Sprintf("key contains the delimiter %q", delim)
	case strings.TrimSpace(p.Key) != p.Key:
		return "key has surrounding whitespace"
	case strings.TrimSpace(p.Value) != p.Value:
		return "value has surrounding whitespace"
	}
	return ""
}

// replaceFile writes data next to path and renames it into place.
// The directory is created when missing; a failed write leaves path untouched.
func replaceFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("save '%s': %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save '%s': %w", path, err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, removeIfExists(tmp.Name()))
		}
	}()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0644)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		return fmt.Errorf("save '%s': %w", path, err)
	}
	return nil
}

func removeIfExists(name string) error {
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
