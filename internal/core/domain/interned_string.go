package domain

import "unique"

// InternedString wraps a unique.Handle[string] so that repeated task
// identifiers share one allocation. The scheduler and the fingerprint
// store key everything by task ID, and every variant repeats the same
// handful of prefixes, so interning keeps comparisons cheap.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns its handle.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// NewInternedStrings interns every element of ss, preserving order.
func NewInternedStrings(ss []string) []InternedString {
	interned := make([]InternedString, len(ss))
	for i, s := range ss {
		interned[i] = NewInternedString(s)
	}
	return interned
}

// String returns the interned string value. The zero value reads as
// the empty string.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}

// MarshalText implements encoding.TextMarshaler so task IDs can key
// the persisted fingerprint state.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.h.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
