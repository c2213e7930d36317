// Package catalog holds the closed lookup tables the scheduler books
// against: time slots, rooms and departments. Each table maps an upper-case
// key to its attributes; lookups are case-insensitive.
package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeKey upper-cases user input the way catalog keys are spelled.
// A Caser is stateful, so one is built per call.
func normalizeKey(name string) string {
	return cases.Upper(language.Und).String(name)
}

func lookup[T any](table []T, key func(T) string, name string) (T, bool) {
	want := normalizeKey(name)
	for _, v := range table {
		if key(v) == want {
			return v, true
		}
	}
	var zero T
	return zero, false
}
