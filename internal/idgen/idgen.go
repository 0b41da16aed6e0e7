// Package idgen provides the id strategies used for headings that arrive
// without an identifier.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator func() string

// UUID returns a Generator producing random v4 UUID strings.
func UUID() Generator {
	return func() string {
		return uuid.New().String()
	}
}

// Sequence returns a Generator producing prefix-1, prefix-2, ...
// Safe for concurrent use. Intended for tests and reproducible output.
func Sequence(prefix string) Generator {
	var n atomic.Int64
	return func() string {
		return prefix + "-" + strconv.FormatInt(n.Add(1), 10)
	}
}

// Prefixed wraps gen so that every id starts with prefix followed by a dash.
func Prefixed(prefix string, gen Generator) Generator {
	if gen == nil {
		gen = UUID()
	}
	return func() string {
		return prefix + "-" + gen()
	}
}
