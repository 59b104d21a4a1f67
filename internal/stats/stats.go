// Package stats implements the descriptive statistics behind the reports.
//
// Min and Max resolve ties in favour of the last occurrence: the scan uses
// <= and >= so an equal value seen later replaces the current best.
package stats

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyInput is returned when a statistic needs at least one value.
var ErrEmptyInput = errors.New("empty input")

// Number is any value the statistics accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Result is an extremal value and its position in the input slice.
type Result struct {
	Value float64
	Index int
}

// Mean returns the arithmetic mean of values.
func Mean[T Number](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var total float64
	for _, v := range values {
		total += float64(v)
	}
	return total / float64(len(values)), nil
}

// Min returns the smallest value and its index. ok is false for empty input.
func Min[T Number](values []T) (res Result, ok bool) {
	return scan(values, func(v, best T) bool { return v <= best })
}

// Max returns the largest value and its index. ok is false for empty input.
func Max[T Number](values []T) (res Result, ok bool) {
	return scan(values, func(v, best T) bool { return v >= best })
}

func scan[T Number](values []T, better func(v, best T) bool) (Result, bool) {
	if len(values) == 0 {
		return Result{}, false
	}
	best, idx := values[0], 0
	for i, v := range values {
		if better(v, best) {
			best, idx = v, i
		}
	}
	return Result{Value: float64(best), Index: idx}, true
}
