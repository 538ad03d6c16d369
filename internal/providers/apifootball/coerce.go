package apifootball

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Upstream payloads mix numbers, numeric strings and nulls in the same
// positions. Coercion never fails a request: a value that cannot be read as a
// number becomes nil (or the zero default), per field.

func intOrNil(v any) *int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case json.Number:
		if f, err := n.Float64(); err == nil {
			i := int(f)
			return &i
		}
		return nil
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(n), "%")
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			i := int(f)
			return &i
		}
		return nil
	default:
		return nil
	}
}

func intOrZero(v any) int {
	if p := intOrNil(v); p != nil {
		return *p
	}
	return 0
}

func stringOrNil(v any) *string {
	switch s := v.(type) {
	case string:
		if s == "" {
			return nil
		}
		return &s
	case float64:
		formatted := strconv.FormatFloat(s, 'f', -1, 64)
		return &formatted
	default:
		return nil
	}
}

func stringOrEmpty(v any) string {
	if p := stringOrNil(v); p != nil {
		return *p
	}
	return ""
}
