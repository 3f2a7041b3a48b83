package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp_MillisecondPrecision(t *testing.T) {
	ts := FormatTimestamp(time.Date(2026, 2, 24, 9, 15, 30, 123_000_000, time.UTC))
	assert.Equal(t, "2026-02-24T09:15:30.123Z", ts)

	// Always three fractional digits, even for whole seconds.
	ts = FormatTimestamp(time.Date(2026, 2, 24, 9, 15, 30, 0, time.UTC))
	assert.Equal(t, "2026-02-24T09:15:30.000Z", ts)
}

func TestNowTimestamp_Shape(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`), NowTimestamp())
}

func TestTimestamps_LexicographicOrderIsChronological(t *testing.T) {
	earlier := FormatTimestamp(time.Date(2026, 2, 24, 9, 59, 59, 999_000_000, time.UTC))
	later := FormatTimestamp(time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC))
	assert.Less(t, earlier, later)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, TicketStatusOpen.Valid())
	assert.True(t, TicketStatusPending.Valid())
	assert.True(t, TicketStatusClosed.Valid())
	assert.False(t, TicketStatus("archived").Valid())
	assert.False(t, TicketStatus("").Valid())

	assert.True(t, TicketPriorityLow.Valid())
	assert.True(t, TicketPriorityMedium.Valid())
	assert.True(t, TicketPriorityHigh.Valid())
	assert.False(t, TicketPriority("urgent").Valid())
	assert.False(t, TicketPriority("").Valid())
}
