package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// coercer collects the paths of fields that fell back to a default.
type coercer struct {
	defaulted []string
}

func (c *coercer) note(path string) {
	c.defaulted = append(c.defaulted, path)
}

// rule coerces one key of a JSON object into a field of T. apply reports
// whether the default was used.
type rule[T any] struct {
	keys     []string
	optional bool
	apply    func(c *coercer, dst *T, raw any, path string, idx int) bool
}

// opt marks the field optional: a missing key takes the default silently.
func (r rule[T]) opt() rule[T] {
	r.optional = true
	return r
}

// schema is the ordered set of rules describing one JSON object shape.
type schema[T any] []rule[T]

func (s schema[T]) decode(c *coercer, obj map[string]any, prefix string, idx int) T {
	var out T
	for _, r := range s {
		raw, found := lookup(obj, r.keys)
		path := joinPath(prefix, r.keys[0])
		if r.apply(c, &out, raw, path, idx) && (found || !r.optional) {
			c.note(path)
		}
	}
	return out
}

// lookup returns the first non-null value among keys.
func lookup(obj map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func keyList(key string, aliases []string) []string {
	return append([]string{key}, aliases...)
}

// Field constructors.

func stringField[T any](key string, get func(*T) *string, aliases ...string) rule[T] {
	return rule[T]{keys: keyList(key, aliases), apply: func(_ *coercer, dst *T, raw any, _ string, _ int) bool {
		s, ok := raw.(string)
		*get(dst) = s
		return !ok
	}}
}

func boolField[T any](key string, get func(*T) *bool) rule[T] {
	return rule[T]{keys: []string{key}, apply: func(_ *coercer, dst *T, raw any, _ string, _ int) bool {
		b, ok := coerceBool(raw)
		*get(dst) = b
		return !ok
	}}
}

// intField coerces numbers and numeric strings. def receives the element
// index so ids can default to their array position.
func intField[T any](key string, def func(idx int) int, valid func(int) bool, get func(*T) *int, aliases ...string) rule[T] {
	return rule[T]{keys: keyList(key, aliases), apply: func(_ *coercer, dst *T, raw any, _ string, idx int) bool {
		n, ok := coerceInt(raw)
		if ok && valid != nil && !valid(n) {
			ok = false
		}
		if !ok {
			n = def(idx)
		}
		*get(dst) = n
		return !ok
	}}
}

func enumField[T any, E ~string](key string, valid map[E]bool, def E, get func(*T) *E) rule[T] {
	return rule[T]{keys: []string{key}, apply: func(_ *coercer, dst *T, raw any, _ string, _ int) bool {
		s, _ := raw.(string)
		v := E(strings.ToLower(strings.TrimSpace(s)))
		if !valid[v] {
			*get(dst) = def
			return true
		}
		*get(dst) = v
		return false
	}}
}

// stringsField keeps the string elements of an array and drops the rest.
func stringsField[T any](key string, get func(*T) *[]string) rule[T] {
	return rule[T]{keys: []string{key}, apply: func(c *coercer, dst *T, raw any, path string, _ int) bool {
		items, ok := raw.([]any)
		out := make([]string, 0, len(items))
		for i, item := range items {
			s, isStr := item.(string)
			if !isStr {
				c.note(indexPath(path, i))
				continue
			}
			out = append(out, s)
		}
		*get(dst) = out
		return !ok
	}}
}

// listField decodes each object element with elem; non-object elements are
// dropped individually instead of rejecting the array. Paths of decoded
// elements index the resulting slice, not the raw array.
func listField[T, E any](key string, elem schema[E], get func(*T) *[]E, aliases ...string) rule[T] {
	return rule[T]{keys: keyList(key, aliases), apply: func(c *coercer, dst *T, raw any, path string, _ int) bool {
		items, ok := raw.([]any)
		out := make([]E, 0, len(items))
		for i, item := range items {
			obj, isObj := item.(map[string]any)
			if !isObj {
				c.note(indexPath(path, i))
				continue
			}
			n := len(out)
			out = append(out, elem.decode(c, obj, indexPath(path, n), n))
		}
		*get(dst) = out
		return !ok
	}}
}

// objectField decodes an optional nested object into a pointer field.
func objectField[T, E any](key string, elem schema[E], get func(*T) **E) rule[T] {
	return rule[T]{keys: []string{key}, apply: func(c *coercer, dst *T, raw any, path string, _ int) bool {
		obj, ok := raw.(map[string]any)
		if !ok {
			*get(dst) = nil
			return true
		}
		v := elem.decode(c, obj, path, 0)
		*get(dst) = &v
		return false
	}}
}

// Value coercers.

func coerceInt(raw any) (int, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(math.Round(f)), true
}

func coerceBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	default:
		return false, false
	}
}

func indexDefault(idx int) int { return idx }

func constDefault(n int) func(int) int {
	return func(int) int { return n }
}

func between(lo, hi int) func(int) bool {
	return func(n int) bool { return n >= lo && n <= hi }
}
