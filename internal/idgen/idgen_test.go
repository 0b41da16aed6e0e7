package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUID(t *testing.T) {
	gen := UUID()
	a, b := gen(), gen()
	if a == b {
		t.Errorf("Expected distinct ids, got %s twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("Expected a valid uuid, got %s: %v", a, err)
	}
}

func TestSequence(t *testing.T) {
	gen := Sequence("h")
	expected := []string{"h-1", "h-2", "h-3"}
	for _, want := range expected {
		if got := gen(); got != want {
			t.Errorf("Sequence() = %s, want %s", got, want)
		}
	}
}

func TestPrefixed(t *testing.T) {
	tests := []struct {
		name     string
		gen      Generator
		expected string
	}{
		{
			name:     "Wraps sequence",
			gen:      Sequence("x"),
			expected: "fallback-x-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prefixed("fallback", tt.gen)(); got != tt.expected {
				t.Errorf("Prefixed() = %s, want %s", got, tt.expected)
			}
		})
	}

	t.Run("Nil generator falls back to uuid", func(t *testing.T) {
		id := Prefixed("fallback", nil)()
		if !strings.HasPrefix(id, "fallback-") {
			t.Fatalf("Expected fallback- prefix, got %s", id)
		}
		if _, err := uuid.Parse(strings.TrimPrefix(id, "fallback-")); err != nil {
			t.Errorf("Expected uuid suffix, got %s", id)
		}
	})
}
