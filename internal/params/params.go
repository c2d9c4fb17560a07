// Package params converts open query maps into URL-encoded request
// parameters. Only scalar values are accepted; the API expects every
// parameter as a string on the wire.
package params

import (
	"fmt"
	"net/url"
	"strconv"
)

// FormatValue renders a scalar query value as its wire string. Composite
// values (slices, maps, structs) are rejected.
func FormatValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.FormatInt(int64(val), 10), nil
	case int8:
		return strconv.FormatInt(int64(val), 10), nil
	case int16:
		return strconv.FormatInt(int64(val), 10), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case fmt.Stringer:
		return val.String(), nil
	case nil:
		return "", fmt.Errorf("nil value")
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// Encode converts a query map to url.Values. Keys with unsupported value
// types fail as a whole; the caller forwards nothing on error.
func Encode(query map[string]any) (url.Values, error) {
	values := url.Values{}
	for key, raw := range query {
		s, err := FormatValue(raw)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", key, err)
		}
		values.Set(key, s)
	}
	return values, nil
}
