package student

import (
	"fmt"
	"strconv"
)

// admissionNumberWidth is the minimum zero-padded width of the numeric suffix.
// Sequences past 9999 simply render wider.
const admissionNumberWidth = 4

// trailingNumber parses the longest trailing digit run of an identifier.
// "ADM-0042" -> 42. Identifiers without a numeric suffix report ok=false and
// are ignored by the allocator.
func trailingNumber(id string) (int, bool) {
	end := len(id)
	start := end
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}

	n, err := strconv.Atoi(id[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// nextSequence returns max(trailing suffixes)+1, starting at 1 when no
// identifier parses.
func nextSequence(existing []string) int {
	max := 0
	for _, id := range existing {
		if n, ok := trailingNumber(id); ok && n > max {
			max = n
		}
	}
	return max + 1
}

func formatAdmissionNumber(prefix string, sequence int) string {
	return fmt.Sprintf("%s-%0*d", prefix, admissionNumberWidth, sequence)
}
