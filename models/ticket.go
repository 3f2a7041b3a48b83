package models

import "time"

type TicketStatus string

const (
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusPending TicketStatus = "pending"
	TicketStatusClosed  TicketStatus = "closed"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type TicketCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ticket is the persisted support-request record. Timestamps are stored as
// ISO-8601 UTC strings with millisecond precision so that lexicographic
// comparison matches chronological order.
type Ticket struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	Customer    TicketCustomer `json:"customer"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

// timestampLayout forces three fractional digits, e.g. "2026-02-24T09:15:30.123Z".
const timestampLayout = "2006-01-02T15:04:05.000Z"

func NowTimestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusPending, TicketStatusClosed:
		return true
	}
	return false
}

func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}
