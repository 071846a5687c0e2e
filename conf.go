// FILE: lixenwraith/confee/conf.go
package confee

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Conf holds raw configuration values keyed by name.
// Values start as the defaults given to New and are overridden by Update.
// Conf performs no internal locking; callers sharing one instance across goroutines
// must serialize access themselves.
type Conf struct {
	pairs   map[string]string
	delim   rune
	source  string
	updated bool
	logger  zerolog.Logger
}

// New creates a Conf from default pairs. Duplicate keys resolve to the last pair.
func New(defaults ...Pair) (*Conf, error) {
	c := &Conf{
		pairs:  make(map[string]string, len(defaults)),
		logger: zerolog.Nop(),
	}

	for _, p := range defaults {
		if p.Key == "" {
			return nil, fmt.Errorf("%w in defaults (value %q)", ErrEmptyKey, p.Value)
		}
		c.pairs[p.Key] = p.Value
	}

	return c, nil
}

// MustNew is like New but panics on error
func MustNew(defaults ...Pair) *Conf {
	c, err := New(defaults...)
	if err != nil {
		panic(fmt.Sprintf("confee initialization failed: %v", err))
	}
	return c
}

// FromMap creates a Conf from a map of defaults
func FromMap(defaults map[string]string) (*Conf, error) {
	pairs := make([]Pair, 0, len(defaults))
	for k, v := range defaults {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return New(pairs...)
}

// WithDelim sets the delimiter used by Update
func (c *Conf) WithDelim(delim rune) *Conf {
	c.delim = delim
	return c
}

// Delim returns the configured delimiter, or DefaultDelim if none was set
func (c *Conf) Delim() rune {
	if c.delim == 0 {
		return DefaultDelim
	}
	return c.delim
}

// WithSource records the file read by Update. The file is not opened until then.
func (c *Conf) WithSource(path string) *Conf {
	c.source = path
	return c
}

// Source returns the recorded file path
func (c *Conf) Source() string {
	return c.source
}

// WithLogger sets the logger used for update diagnostics
func (c *Conf) WithLogger(logger zerolog.Logger) *Conf {
	c.logger = logger
	return c
}

// Update reads the source file and overrides the store with its pairs.
// Keys missing from the file keep their current value. The store is left untouched
// when reading or parsing fails; I/O errors are returned as-is.
func (c *Conf) Update() error {
	if c.source == "" {
		return ErrNoSource
	}
	if err := validateDelim(c.Delim()); err != nil {
		return err
	}

	data, err := os.ReadFile(c.source)
	if err != nil {
		c.logger.Warn().Err(err).Str("source", c.source).Msg("Failed to read configuration file")
		return err
	}

	if err := c.apply(data); err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", c.source, err)
	}
	return nil
}

// UpdateFrom is like Update but reads the document from r
func (c *Conf) UpdateFrom(r io.Reader) error {
	if err := validateDelim(c.Delim()); err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to read configuration")
		return err
	}

	return c.apply(data)
}

// apply parses data in full before touching the store
func (c *Conf) apply(data []byte) error {
	pairs, err := ParseDocument(data, c.Delim())
	if err != nil {
		c.logger.Warn().Err(err).Str("source", c.source).Msg("Configuration rejected")
		return err
	}

	for _, p := range pairs {
		c.pairs[p.Key] = p.Value
	}
	c.updated = true

	c.logger.Debug().
		Str("source", c.source).
		Int("pairs", len(pairs)).
		Int("keys", len(c.pairs)).
		Msg("Configuration updated")
	return nil
}

// IsUpdated reports whether at least one update has been applied
func (c *Conf) IsUpdated() bool {
	return c.updated
}

// GetRaw returns the unconverted value of key
func (c *Conf) GetRaw(key string) (string, error) {
	value, ok := c.pairs[key]
	if !ok {
		return "", &KeyError{Key: key}
	}
	return value, nil
}

// MustGetRaw returns the unconverted value of key and panics if key is absent.
// Use it only for keys known to be present, such as those supplied as defaults.
func (c *Conf) MustGetRaw(key string) string {
	value, ok := c.pairs[key]
	if !ok {
		panic(fmt.Sprintf("confee: key not found: %s", key))
	}
	return value
}

// Lookup returns the raw value of key and whether it is present
func (c *Conf) Lookup(key string) (string, bool) {
	value, ok := c.pairs[key]
	return value, ok
}

// Has reports whether key is present
func (c *Conf) Has(key string) bool {
	_, ok := c.pairs[key]
	return ok
}

// Len returns the number of keys
func (c *Conf) Len() int {
	return len(c.pairs)
}

// Keys returns all keys in sorted order
func (c *Conf) Keys() []string {
	keys := make([]string, 0, len(c.pairs))
	for k := range c.pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pairs returns all pairs sorted by key
func (c *Conf) Pairs() []Pair {
	keys := c.Keys()
	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: c.pairs[k]})
	}
	return pairs
}

// Clone creates a deep copy of the store, including delimiter, source and logger
func (c *Conf) Clone() *Conf {
	clone := &Conf{
		pairs:   make(map[string]string, len(c.pairs)),
		delim:   c.delim,
		source:  c.source,
		updated: c.updated,
		logger:  c.logger,
	}
	for k, v := range c.pairs {
		clone.pairs[k] = v
	}
	return clone
}

// String renders the store in the line format, one "key<delim> value" line per key
func (c *Conf) String() string {
	var b strings.Builder
	delim := c.Delim()
	for _, p := range c.Pairs() {
		b.WriteString(p.Key)
		b.WriteRune(delim)
		b.WriteByte(' ')
		b.WriteString(p.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
