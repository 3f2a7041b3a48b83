package services

import "ticketdesk/repositories"

type Services struct {
	Ticket *TicketService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Ticket: NewTicketService(repos),
	}
}
