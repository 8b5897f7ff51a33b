// Package foundation holds small generic helpers shared by the doctools packages.
package foundation

import (
	"fmt"
	"slices"
	"strings"
)

// normalizeKey lowercases and trims raw enum input.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps user-supplied strings onto enum values, ignoring case and surrounding
// whitespace.
type Normalizer[T comparable] struct {
	name        string
	validValues map[string]T
}

// NewNormalizer creates a normalizer named name (used in error messages) from a map of
// valid string->value pairs.
func NewNormalizer[T comparable](name string, values map[string]T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[normalizeKey(k)] = v
	}
	return &Normalizer[T]{name: name, validValues: normalized}
}

// Normalize converts raw to the enum value. Unknown input yields an error listing the
// accepted values.
func (n *Normalizer[T]) Normalize(raw string) (T, error) {
	if value, ok := n.validValues[normalizeKey(raw)]; ok {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q (valid: %s)", n.name, raw, strings.Join(n.ValidKeys(), ", "))
}

// ValidKeys returns the accepted spellings in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	keys := make([]string, 0, len(n.validValues))
	for k := range n.validValues {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
