package keyset

import (
	"sort"
	"strings"
)

// Set is an unordered collection of dot-delimited key paths.
type Set map[string]struct{}

// New creates a Set containing the given keys.
func New(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts a key into the set.
func (s Set) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether the key is in the set.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys in the set.
func (s Set) Len() int {
	return len(s)
}

// Diff returns the keys present in s but absent from other.
func (s Set) Diff(other Set) Set {
	result := make(Set)
	for k := range s {
		if _, ok := other[k]; !ok {
			result[k] = struct{}{}
		}
	}
	return result
}

// Equal reports whether both sets contain exactly the same keys.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the keys in lexicographic order.
func (s Set) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the set as "{a, b, c}" with keys sorted, so diagnostics
// are deterministic across runs.
func (s Set) String() string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}
