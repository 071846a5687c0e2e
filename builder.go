// File: lixenwraith/confee/builder.go
package confee

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
)

// ValidatorFunc defines the signature for a function that can validate a Conf instance.
// It receives the fully loaded *Conf and should return an error if validation fails.
type ValidatorFunc func(c *Conf) error

// Builder provides a fluent interface for building configurations
type Builder struct {
	defaults      []Pair
	defaultsFiles []string
	delim         rune
	source        string
	logger        zerolog.Logger
	err           error
	validators    []ValidatorFunc
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		logger:     zerolog.Nop(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithDefaults adds default pairs. Inline defaults override those from defaults files.
func (b *Builder) WithDefaults(defaults ...Pair) *Builder {
	b.defaults = append(b.defaults, defaults...)
	return b
}

// WithDefaultsFile adds a TOML, YAML or JSON file of defaults, see DefaultsFromFile.
// Files are applied in the order they are added.
func (b *Builder) WithDefaultsFile(path string) *Builder {
	b.defaultsFiles = append(b.defaultsFiles, path)
	return b
}

// WithDelim sets the line delimiter of the source file
func (b *Builder) WithDelim(delim rune) *Builder {
	if err := validateDelim(delim); err != nil && b.err == nil {
		b.err = err
	}
	b.delim = delim
	return b
}

// WithSource sets the configuration file path
func (b *Builder) WithSource(path string) *Builder {
	b.source = path
	return b
}

// WithLogger sets the logger handed to the built Conf
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithValidator adds a validation function that runs at the end of the build process.
// Multiple validators can be added and are executed in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// WithRequired adds a validator failing when any of keys is absent
func (b *Builder) WithRequired(keys ...string) *Builder {
	return b.WithValidator(func(c *Conf) error {
		var missing []error
		for _, key := range keys {
			if !c.Has(key) {
				missing = append(missing, &KeyError{Key: key})
			}
		}
		return errors.Join(missing...)
	})
}

// Build creates the Conf and applies the source file if one was set.
// A missing source file is not fatal: the Conf is returned along with the
// error, which matches fs.ErrNotExist. Any other failure returns a nil Conf.
func (b *Builder) Build() (*Conf, error) {
	if b.err != nil {
		return nil, b.err
	}

	var defaults []Pair
	for _, path := range b.defaultsFiles {
		pairs, err := DefaultsFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load defaults: %w", err)
		}
		defaults = append(defaults, pairs...)
	}
	defaults = append(defaults, b.defaults...)

	c, err := New(defaults...)
	if err != nil {
		return nil, fmt.Errorf("failed to register defaults: %w", err)
	}
	c.WithDelim(b.delim).WithLogger(b.logger)

	var loadErr error
	if b.source != "" {
		c.WithSource(b.source)
		if err := c.Update(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			loadErr = err
		}
	}

	for _, validator := range b.validators {
		if err := validator(c); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return c, loadErr
}

// MustBuild is like Build but panics on error.
// A missing source file does not panic; the Conf keeps its defaults.
func (b *Builder) MustBuild() *Conf {
	c, err := b.Build()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("confee build failed: %v", err))
	}
	return c
}
