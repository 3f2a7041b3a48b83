package handlers

import "ticketdesk/services"

type Handlers struct {
	Ticket *TicketHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Ticket: NewTicketHandler(svc.Ticket),
	}
}
