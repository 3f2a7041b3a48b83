package services

import (
	"sort"
	"strings"

	"ticketdesk/models"
)

// TicketPageSize bounds results per list response.
const TicketPageSize = 7

// TicketQuery carries the list query parameters as received on the wire,
// before any normalization.
type TicketQuery struct {
	Search string
	Status string
	Sort   string
	Page   int
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type TicketPage struct {
	Tickets    []models.Ticket `json:"tickets"`
	Pagination Pagination      `json:"pagination"`
}

// ApplyTicketQuery filters, sorts and paginates a ticket snapshot:
// case-insensitive title search first, then status filter, then a stable
// sort by updatedAt, then a 1-based page slice of TicketPageSize.
//
// Unrecognized status values disable the status filter rather than failing;
// any sort value other than "asc" means descending. The requested page is
// clamped into [1, totalPages]. Pure: the input slice is never modified.
func ApplyTicketQuery(tickets []models.Ticket, q TicketQuery) TicketPage {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := models.TicketStatus(q.Status)
	filterByStatus := status.Valid()

	matched := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		if filterByStatus && t.Status != status {
			continue
		}
		matched = append(matched, t)
	}

	// ISO-8601 UTC strings compare lexicographically in chronological order,
	// so string comparison is the ordering.
	asc := q.Sort == "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		if asc {
			return matched[i].UpdatedAt < matched[j].UpdatedAt
		}
		return matched[i].UpdatedAt > matched[j].UpdatedAt
	})

	total := len(matched)
	totalPages := (total + TicketPageSize - 1) / TicketPageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * TicketPageSize
	if start > total {
		start = total
	}
	end := start + TicketPageSize
	if end > total {
		end = total
	}

	return TicketPage{
		Tickets: matched[start:end],
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      TicketPageSize,
			TotalPages: totalPages,
		},
	}
}
