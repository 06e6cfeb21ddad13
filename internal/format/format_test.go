package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/skh121/merobazaar-web/internal/format"
)

func TestFmtNPR(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Rs 0.00", format.FmtNPR(0))
	assert.Equal(t, "Rs 992.50", format.FmtNPR(992.5))
	assert.Equal(t, "Rs 1,000.00", format.FmtNPR(1000))
	assert.Equal(t, "Rs 482,350.00", format.FmtNPR(482350))
	assert.Equal(t, "-Rs 42.50", format.FmtNPR(-42.5))
	assert.Equal(t, "Rs 100.00", format.FmtNPR(99.999))
	assert.Equal(t, "Rs 2,000.00", format.FmtNPR(1999.999))
}

func TestFmtDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", format.FmtDate(time.Time{}))
	assert.Equal(t, "Mar 1, 2026", format.FmtDate(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}
