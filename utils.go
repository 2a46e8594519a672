package boon

import (
	"math/big"
	"sort"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// jsonType identifies the JSON Schema type name for a decoded value.
// Numbers without a fractional part report "integer".
func jsonType(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		if rat := NewRat(v); rat != nil && rat.IsInt() {
			return "integer"
		}
		return "number"
	case float64:
		bigFloat := new(big.Float).SetFloat64(v)
		if _, acc := bigFloat.Int(nil); acc == big.Exact {
			return "integer"
		}
		return "number"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return ""
}

func isNumber(v any) bool {
	t := jsonType(v)
	return t == "number" || t == "integer"
}

// equals implements structural JSON equality: objects compare key-wise
// regardless of insertion order, and numbers compare by exact decimal value
// so 1, 1.0 and 1e0 are all equal.
func equals(a, b any) bool {
	if isNumber(a) && isNumber(b) {
		ra, rb := NewRat(a), NewRat(b)
		return ra != nil && rb != nil && ra.Cmp(rb.Rat) == 0
	}
	switch a := a.(type) {
	case nil:
		return b == nil
	case bool:
		b, ok := b.(bool)
		return ok && a == b
	case string:
		b, ok := b.(string)
		return ok && a == b
	case []any:
		b, ok := b.([]any)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !equals(a[i], b[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		b, ok := b.(map[string]any)
		if !ok || len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !equals(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// lenCodePoints measures string length in Unicode code points, not bytes.
func lenCodePoints(s string) int {
	return utf8.RuneCountInString(s)
}

func strVal(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func boolVal(obj map[string]any, key string) (bool, bool) {
	v, ok := obj[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// sortedKeys returns the map's keys in lexical order, so keyword evaluation
// order and error trees are identical across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mergeStringMaps merges the second map into the first.
func mergeStringMaps(dst, src map[string]bool) map[string]bool {
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

// mergeIntMaps merges the second map into the first.
func mergeIntMaps(dst, src map[int]bool) map[int]bool {
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
