package confee

import (
	"fmt"
	"os"
	"sort"
)

// DefaultsFromFile reads default pairs from a TOML, YAML or JSON file.
// The format is taken from the extension (.toml, .tml, .yaml, .yml, .json) and
// detected from the content otherwise. Nested tables become dot-separated keys
// ("server.port"), lists are joined with ",". Pairs are sorted by key.
func DefaultsFromFile(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("%w: defaults file '%s'", ErrUnknownFormat, path)
		}
	}

	table, err := decodeTable(data, format)
	if err != nil {
		return nil, fmt.Errorf("defaults file '%s': %w", path, err)
	}

	flat := flattenMap(table, "")
	pairs := make([]Pair, 0, len(flat))
	for key, value := range flat {
		pairs = append(pairs, Pair{Key: key, Value: stringify(value)})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })

	return pairs, nil
}
