// Package sequence defines the human-readable numbering used for tickets and
// invoices ("T-00042", "INV-00007").
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Width is the zero-padded width of the numeric suffix.
const Width = 5

// Counter hands out the next value of a named, monotonically increasing sequence.
// Implementations must be atomic across concurrent callers.
type Counter interface {
	Next(ctx context.Context, name string) (int64, error)
}

// Format renders n with the given prefix, e.g. Format("T", 42) == "T-00042".
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s-%0*d", prefix, Width, n)
}

// Parse extracts the numeric suffix of a formatted number. It accepts any
// prefix, so legacy numbers with a different prefix still seed the counter.
func Parse(number string) (int64, error) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, fmt.Errorf("sequence number %q has no numeric suffix", number)
	}
	n, err := strconv.ParseInt(number[idx+1:], 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("sequence number %q has an invalid suffix", number)
	}
	return n, nil
}
