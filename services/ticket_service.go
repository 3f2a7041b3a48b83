package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"ticketdesk/dto"
	"ticketdesk/models"
	"ticketdesk/repositories"
)

var ErrTicketNotFound = errors.New("ticket not found")

// ValidationError marks rejected input. Handlers map it to a 400 response.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

func errInvalidStatus() ValidationError {
	return ValidationError(fmt.Sprintf("status must be one of: %s, %s, %s",
		models.TicketStatusOpen, models.TicketStatusPending, models.TicketStatusClosed))
}

func errInvalidPriority() ValidationError {
	return ValidationError(fmt.Sprintf("priority must be one of: %s, %s, %s",
		models.TicketPriorityLow, models.TicketPriorityMedium, models.TicketPriorityHigh))
}

type TicketService struct {
	repo repositories.TicketRepo
}

func NewTicketService(repos *repositories.Repos) *TicketService {
	return &TicketService{repo: repos.Ticket}
}

// ListTickets runs the query pipeline over a fresh store snapshot.
func (s *TicketService) ListTickets(q TicketQuery) (TicketPage, error) {
	tickets, err := s.repo.ReadAll()
	if err != nil {
		return TicketPage{}, err
	}
	return ApplyTicketQuery(tickets, q), nil
}

func (s *TicketService) GetTicket(id string) (models.Ticket, error) {
	tickets, err := s.repo.ReadAll()
	if err != nil {
		return models.Ticket{}, err
	}
	for _, t := range tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, ErrTicketNotFound
}

func (s *TicketService) CreateTicket(input dto.CreateTicketDTO) (models.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Ticket{}, ValidationError("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return models.Ticket{}, ValidationError("description is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = models.TicketPriorityMedium
	}
	if !priority.Valid() {
		return models.Ticket{}, errInvalidPriority()
	}

	now := models.NowTimestamp()
	ticket := models.Ticket{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Status:      models.TicketStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Customer != nil {
		ticket.Customer = *input.Customer
	}

	err := s.repo.Mutate(func(tickets *[]models.Ticket) error {
		*tickets = append(*tickets, ticket)
		return nil
	})
	if err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

// UpdateTicket merges the supplied fields onto the stored ticket and
// refreshes updatedAt. Fields absent from the request keep their value.
func (s *TicketService) UpdateTicket(id string, input dto.UpdateTicketDTO) (models.Ticket, error) {
	if input.Status != nil && !input.Status.Valid() {
		return models.Ticket{}, errInvalidStatus()
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return models.Ticket{}, errInvalidPriority()
	}

	var updated models.Ticket
	err := s.repo.Mutate(func(tickets *[]models.Ticket) error {
		for i := range *tickets {
			if (*tickets)[i].ID != id {
				continue
			}
			t := (*tickets)[i]
			if input.Title != nil {
				t.Title = *input.Title
			}
			if input.Description != nil {
				t.Description = *input.Description
			}
			if input.Priority != nil {
				t.Priority = *input.Priority
			}
			if input.Status != nil {
				t.Status = *input.Status
			}
			if input.Customer != nil {
				t.Customer = *input.Customer
			}
			t.UpdatedAt = models.NowTimestamp()
			(*tickets)[i] = t
			updated = t
			return nil
		}
		return ErrTicketNotFound
	})
	if err != nil {
		return models.Ticket{}, err
	}
	return updated, nil
}

func (s *TicketService) DeleteTicket(id string) error {
	return s.repo.Mutate(func(tickets *[]models.Ticket) error {
		for i := range *tickets {
			if (*tickets)[i].ID == id {
				*tickets = append((*tickets)[:i], (*tickets)[i+1:]...)
				return nil
			}
		}
		return ErrTicketNotFound
	})
}
