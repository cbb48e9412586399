// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"
)

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// IntPtr returns a pointer to an int.
// Convenience function for filter option tests.
func IntPtr(i int) *int {
	return &i
}

// BoolPtr returns a pointer to a bool.
func BoolPtr(b bool) *bool {
	return &b
}

// StringSlice returns a slice of strings.
// Convenience function for airline filter tests.
func StringSlice(s ...string) []string {
	return s
}
