// File: lixenwraith/confee/helper.go
package confee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			for subPath, subValue := range flattenMap(v, newPath) {
				flat[subPath] = subValue
			}
		case map[any]any:
			// YAML mappings with non-string keys
			converted := make(map[string]any, len(v))
			for k, sub := range v {
				converted[fmt.Sprint(k)] = sub
			}
			for subPath, subValue := range flattenMap(converted, newPath) {
				flat[subPath] = subValue
			}
		default:
			flat[newPath] = value
		}
	}

	return flat
}

// stringify renders a decoded scalar as a raw value. Lists are joined with ",".
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing into a table.
// TOML is tried before YAML since most TOML documents are also valid YAML scalars.
func detectFormatFromContent(data []byte) string {
	var probe map[string]any

	if err := json.Unmarshal(data, &probe); err == nil {
		return "json"
	}
	probe = nil
	if err := toml.Unmarshal(data, &probe); err == nil {
		return "toml"
	}
	probe = nil
	if err := yaml.Unmarshal(data, &probe); err == nil && probe != nil {
		return "yaml"
	}

	return ""
}

// decodeTable parses data in the given format into a nested map
func decodeTable(data []byte, format string) (map[string]any, error) {
	table := make(map[string]any)

	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&table); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return table, nil
}
