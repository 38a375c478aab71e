package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailingNumber(t *testing.T) {
	cases := []struct {
		id string
		n  int
		ok bool
	}{
		{"CF-0042", 42, true},
		{"CF-0001", 1, true},
		{"CF-10000", 10000, true},
		{"CF-2024-0007", 7, true},
		{"CF-", 0, false},
		{"legacy", 0, false},
		{"", 0, false},
		{"0042", 42, true},
	}

	for _, tc := range cases {
		n, ok := trailingNumber(tc.id)
		assert.Equal(t, tc.ok, ok, tc.id)
		assert.Equal(t, tc.n, n, tc.id)
	}
}

func TestNextSequence(t *testing.T) {
	// Highest suffix wins regardless of order.
	assert.Equal(t, 43, nextSequence([]string{"CF-0007", "CF-0042", "CF-0001"}))

	// Unparseable identifiers are skipped, not fatal.
	assert.Equal(t, 8, nextSequence([]string{"legacy", "CF-0007", "CF-"}))

	// Empty roster starts the sequence at 1.
	assert.Equal(t, 1, nextSequence(nil))
	assert.Equal(t, 1, nextSequence([]string{"no-digits"}))
}

func TestFormatAdmissionNumber(t *testing.T) {
	assert.Equal(t, "CF-0001", formatAdmissionNumber("CF", 1))
	assert.Equal(t, "CF-0042", formatAdmissionNumber("CF", 42))
	assert.Equal(t, "CF-9999", formatAdmissionNumber("CF", 9999))

	// Width grows past four digits instead of truncating.
	assert.Equal(t, "CF-10000", formatAdmissionNumber("CF", 10000))

	// Round-trips through the parser.
	n, ok := trailingNumber(formatAdmissionNumber("CF", 10000))
	assert.True(t, ok)
	assert.Equal(t, 10000, n)
}
