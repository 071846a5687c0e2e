// FILE: lixenwraith/confee/decode.go
package confee

import (
	"encoding"
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag read by Scan
const TagName = "conf"

// Scan decodes the whole store into target, which must be a non-nil pointer to a
// struct or map. Struct fields are matched by their `conf` tag, or by name.
// Values convert with the same rules as Get.
func (c *Conf) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	data := make(map[string]any, len(c.pairs))
	for k, v := range c.pairs {
		data[k] = v
	}

	decoder, err := newDecoder(target)
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to scan configuration into %T: %w", target, err)
	}
	return nil
}

// decodeValue converts raw into the value target points to
func decodeValue(raw string, target any) error {
	// Types parsing themselves from text skip the decoder entirely
	if u, ok := target.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(raw))
	}

	decoder, err := newDecoder(target)
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// newDecoder creates a strict decoder: strings only become other types through decodeHook
func newDecoder(target any) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    TagName,
		DecodeHook: decodeHook(),
		ZeroFields: true,
	})
}

// decodeHook returns the composite decode hook for all string conversions.
// Order matters: each hook sees the output of the previous one, and only string
// inputs are converted.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		parsedValueHookFunc(func(s string) (*net.IPNet, error) {
			_, ipnet, err := net.ParseCIDR(s)
			return ipnet, err
		}),
		parsedValueHookFunc(func(s string) (*url.URL, error) {
			// url.Parse accepts the empty string
			if strings.TrimSpace(s) == "" {
				return nil, errors.New("empty URL")
			}
			return url.Parse(s)
		}),
		mapstructure.StringToTimeDurationHookFunc(),
		stringToSliceHookFunc(","),
		stringToScalarHookFunc(),
	)
}

// parsedValueHookFunc converts strings with parse into T or *T targets
func parsedValueHookFunc[T any](parse func(string) (*T, error)) mapstructure.DecodeHookFuncType {
	valueType := reflect.TypeFor[T]()
	ptrType := reflect.TypeFor[*T]()

	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || (t != valueType && t != ptrType) {
			return data, nil
		}

		v, err := parse(data.(string))
		if err != nil {
			return nil, fmt.Errorf("parse %q as %s: %w", data, valueType, err)
		}
		if t == ptrType {
			return v, nil
		}
		return *v, nil
	}
}

var byteSliceType = reflect.TypeFor[[]byte]()

// stringToSliceHookFunc splits on sep and trims each element; "" becomes an empty slice.
// Byte slices take the raw text unsplit.
func stringToSliceHookFunc(sep string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}

		raw := data.(string)
		if t.ConvertibleTo(byteSliceType) && t.Elem().Kind() == reflect.Uint8 {
			return reflect.ValueOf([]byte(raw)).Convert(t).Interface(), nil
		}
		if strings.TrimSpace(raw) == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}

// stringToScalarHookFunc parses booleans and base-10 numbers, rejecting out-of-range values.
// Unsigned integers accept a single leading '+' like their signed counterparts.
func stringToScalarHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)

		switch t.Kind() {
		case reflect.Bool:
			b, err := strconv.ParseBool(s)
			if err != nil {
				return nil, err
			}
			return reflect.ValueOf(b).Convert(t).Interface(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i, err := strconv.ParseInt(s, 10, t.Bits())
			if err != nil {
				return nil, err
			}
			return reflect.ValueOf(i).Convert(t).Interface(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, t.Bits())
			if err != nil {
				return nil, err
			}
			return reflect.ValueOf(u).Convert(t).Interface(), nil
		case reflect.Float32, reflect.Float64:
			fl, err := strconv.ParseFloat(s, t.Bits())
			if err != nil {
				return nil, err
			}
			return reflect.ValueOf(fl).Convert(t).Interface(), nil
		}

		return data, nil
	}
}
