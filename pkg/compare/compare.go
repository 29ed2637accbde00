package compare

import (
	"reflect"
	"regexp"
	"time"
)

// Relation identifies a comparison relation between two values.
type Relation string

const (
	Eq  Relation = "eq"
	Ne  Relation = "ne"
	Gt  Relation = "gt"
	Gte Relation = "gte"
	Lt  Relation = "lt"
	Lte Relation = "lte"
)

// isoDatePattern matches ISO date and date-time strings:
// YYYY-MM-DD optionally followed by THH:MM:SS[.mmm] and an optional Z.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d{1,3})?Z?)?$`)

// Compare evaluates a relation between two values and returns the result.
// It never returns an error: mismatched or non-orderable kinds yield false.
//
// When both operands are date-like (time.Time, ISO-8601 string, or a
// strictly positive number taken as epoch milliseconds) they are normalized
// to instants and compared chronologically. Otherwise ordering relations
// require both operands to be numbers or both to be strings, and equality
// relations use strict value equality on the raw operands.
func Compare(rel Relation, left, right any) bool {
	leftInstant, leftIsDate := toInstant(left)
	rightInstant, rightIsDate := toInstant(right)

	if leftIsDate && rightIsDate {
		return compareFloats(rel, leftInstant, rightInstant)
	}

	switch rel {
	case Eq:
		return valueEqual(left, right)
	case Ne:
		return !valueEqual(left, right)
	}

	if leftNum, ok := toFloat(left); ok {
		if rightNum, ok := toFloat(right); ok {
			return compareFloats(rel, leftNum, rightNum)
		}
		return false
	}

	if leftStr, ok := left.(string); ok {
		if rightStr, ok := right.(string); ok {
			return compareStrings(rel, leftStr, rightStr)
		}
	}

	return false
}

// toInstant reports whether a value is date-like and, if so, returns its
// epoch-millisecond instant. Instants stay in float64 so that fractional
// numeric operands compare without truncation.
func toInstant(value any) (float64, bool) {
	switch v := value.(type) {
	case time.Time:
		return float64(v.UnixMilli()), true

	case string:
		if !isoDatePattern.MatchString(v) {
			return 0, false
		}
		t, err := parseISO(v)
		if err != nil {
			return 0, false
		}
		return float64(t.UnixMilli()), true
	}

	if num, ok := toFloat(value); ok && num > 0 {
		return num, true
	}

	return 0, false
}

// parseISO parses a pattern-validated ISO date or date-time string.
// Timestamps without an explicit zone are taken as UTC.
func parseISO(s string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	// Unreachable for pattern-validated input with a valid calendar date;
	// surface the last parse error for the rest.
	return time.Parse("2006-01-02", s)
}

// valueEqual checks strict value equality between two raw operands.
// Numbers compare across Go numeric kinds; everything else uses deep
// equality.
func valueEqual(left, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}

	leftNum, leftOK := toFloat(left)
	rightNum, rightOK := toFloat(right)
	if leftOK && rightOK {
		return leftNum == rightNum
	}
	if leftOK != rightOK {
		return false
	}

	return reflect.DeepEqual(left, right)
}

func compareFloats(rel Relation, left, right float64) bool {
	switch rel {
	case Eq:
		return left == right
	case Ne:
		return left != right
	case Gt:
		return left > right
	case Gte:
		return left >= right
	case Lt:
		return left < right
	case Lte:
		return left <= right
	}
	return false
}

func compareStrings(rel Relation, left, right string) bool {
	switch rel {
	case Gt:
		return left > right
	case Gte:
		return left >= right
	case Lt:
		return left < right
	case Lte:
		return left <= right
	}
	return false
}

// toFloat converts any Go numeric kind to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
