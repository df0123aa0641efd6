package date

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrDuplicate is returned when a value is appended twice on the same day.
var ErrDuplicate = errors.New("duplicate date")

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Append adds a point to the history, keeping it sorted.
//
// A point already recorded on that day is an error wrapping ErrDuplicate,
// the history is left unchanged.
func (h *History[T]) Append(on Date, q T) error {
	i, found := slices.BinarySearchFunc(h.days, on, Date.Compare)
	if found {
		return fmt.Errorf("%w: %s", ErrDuplicate, on)
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, q)
	return nil
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Days returns a copy of the history dates.
func (h *History[T]) Days() []Date { return slices.Clone(h.days) }

// Get returns the value at 'day' and true or zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	i, found := slices.BinarySearchFunc(h.days, day, Date.Compare)
	if found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}
