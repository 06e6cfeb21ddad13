// Package format holds display formatting helpers shared by templates.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FmtNPR formats an amount in Nepali rupees with thousands separators.
// Example: FmtNPR(2450.5) => "Rs 2,450.50".
func FmtNPR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	// Round in cents first so .995 and up carries into the whole part.
	cents := int64(math.Round(amount * 100))
	out := fmt.Sprintf("Rs %s.%02d", thousandSep(cents/100), cents%100)
	if neg {
		return "-" + out
	}
	return out
}

// FmtDate formats a timestamp in the short form used across the UI.
func FmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
