package engine

import "time"

// Calendar-date helpers. All bookkeeping uses UTC dates without a
// time-of-day component, keyed as YYYY-MM-DD strings.

const dateLayout = "2006-01-02"

func dateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func sameDay(a, b time.Time) bool {
	return dateKey(a) == dateKey(b)
}

// daysBetween returns the whole-day gap between two date keys (b - a).
// Malformed keys count as no gap.
func daysBetween(a, b string) int {
	ta, err := time.Parse(dateLayout, a)
	if err != nil {
		return 0
	}
	tb, err := time.Parse(dateLayout, b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta) / (24 * time.Hour))
}
