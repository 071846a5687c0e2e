// FILE: lixenwraith/confee/type.go
package confee

import (
	"reflect"
	"time"
)

// Get converts the raw value of key to T.
// T may be a string, bool, integer or float type, time.Duration, url.URL, net.IPNet,
// a slice of those (comma separated), or any type whose pointer implements
// encoding.TextUnmarshaler (net.IP, netip.Addr, netip.AddrPort, time.Time, ...).
// The raw value is parsed again on every call.
//
//	port, err := confee.Get[uint16](conf, "port")
//	addr, err := confee.Get[netip.Addr](conf, "addr")
func Get[T any](c *Conf, key string) (T, error) {
	var value T

	raw, err := c.GetRaw(key)
	if err != nil {
		return value, err
	}

	if err := decodeValue(raw, &value); err != nil {
		var zero T
		return zero, &ConversionError{Key: key, Value: raw, Type: typeName[T](), Cause: err}
	}
	return value, nil
}

// GetWith converts the raw value of key with parse
func GetWith[T any](c *Conf, key string, parse func(string) (T, error)) (T, error) {
	var zero T

	raw, err := c.GetRaw(key)
	if err != nil {
		return zero, err
	}

	value, err := parse(raw)
	if err != nil {
		return zero, &ConversionError{Key: key, Value: raw, Type: typeName[T](), Cause: err}
	}
	return value, nil
}

// GetOr is like Get but returns fallback when key is absent or cannot be converted
func GetOr[T any](c *Conf, key string, fallback T) T {
	value, err := Get[T](c, key)
	if err != nil {
		return fallback
	}
	return value
}

// Int64 retrieves an int64 configuration value
func (c *Conf) Int64(key string) (int64, error) {
	return Get[int64](c, key)
}

// Uint16 retrieves a uint16 configuration value, the usual type for ports
func (c *Conf) Uint16(key string) (uint16, error) {
	return Get[uint16](c, key)
}

// Bool retrieves a boolean configuration value
func (c *Conf) Bool(key string) (bool, error) {
	return Get[bool](c, key)
}

// Float64 retrieves a float64 configuration value
func (c *Conf) Float64(key string) (float64, error) {
	return Get[float64](c, key)
}

// Duration retrieves a time.Duration configuration value ("1m30s")
func (c *Conf) Duration(key string) (time.Duration, error) {
	return Get[time.Duration](c, key)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
