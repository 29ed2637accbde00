package fieldpath

import (
	"reflect"
	"strconv"
	"strings"
)

// Wildcard is the path segment that selects every element of an array.
const Wildcard = "*"

// Resolve navigates a dot-separated path through an arbitrary nested value
// and returns the value it addresses. The second return value reports
// whether the path resolved: it is false when any segment is missing, when
// an index is out of range, or when a wildcard segment meets a non-array.
//
// A missing map key and an out-of-range array index produce the same
// "not found" outcome; callers cannot distinguish the two.
func Resolve(value any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	return resolveSegments(value, strings.Split(path, "."))
}

// resolveSegments walks the remaining path segments from the current value.
func resolveSegments(current any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return current, true
	}

	segment := segments[0]

	if segment == Wildcard {
		return resolveWildcard(current, segments[1:])
	}

	if current == nil {
		return nil, false
	}

	next, ok := descend(current, segment)
	if !ok {
		return nil, false
	}

	return resolveSegments(next, segments[1:])
}

// resolveWildcard applies the remaining path independently to every element
// of the current array.
//
// With no remaining path the result is the array itself. Otherwise each
// element resolves the rest of the path on its own; elements that fail to
// resolve are dropped. When any per-element result is itself an array
// (a nested wildcard), the overall result is the flattened concatenation
// of all per-element results.
func resolveWildcard(current any, rest []string) (any, bool) {
	elements, ok := asSlice(current)
	if !ok {
		return nil, false
	}

	if len(rest) == 0 {
		return current, true
	}

	results := make([]any, 0, len(elements))
	nested := false
	for _, element := range elements {
		value, found := resolveSegments(element, rest)
		if !found {
			continue
		}
		if _, isArr := asSlice(value); isArr {
			nested = true
		}
		results = append(results, value)
	}

	if !nested {
		return results, true
	}

	flat := make([]any, 0, len(results))
	for _, value := range results {
		if inner, isArr := asSlice(value); isArr {
			flat = append(flat, inner...)
			continue
		}
		flat = append(flat, value)
	}
	return flat, true
}

// descend resolves a single non-wildcard segment against the current value.
func descend(current any, segment string) (any, bool) {
	switch v := current.(type) {
	case map[string]any:
		value, ok := v[segment]
		return value, ok

	case []any:
		index, err := strconv.Atoi(segment)
		if err != nil || index < 0 || index >= len(v) {
			return nil, false
		}
		return v[index], true
	}

	return descendReflect(current, segment)
}

// descendReflect handles maps with non-any values, typed slices, and
// structs. This keeps the resolver usable against caller-defined Go types,
// not just JSON-decoded shapes.
func descendReflect(current any, segment string) (any, bool) {
	v := reflect.ValueOf(current)

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		entry := v.MapIndex(reflect.ValueOf(segment).Convert(v.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true

	case reflect.Slice, reflect.Array:
		index, err := strconv.Atoi(segment)
		if err != nil || index < 0 || index >= v.Len() {
			return nil, false
		}
		return v.Index(index).Interface(), true

	case reflect.Struct:
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, segment)
		})
		if !field.IsValid() || !field.CanInterface() {
			return nil, false
		}
		return field.Interface(), true
	}

	return nil, false
}

// asSlice normalizes any slice or array value to []any.
func asSlice(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	if s, ok := value.([]any); ok {
		return s, true
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.Index(i).Interface()
	}
	return out, true
}
