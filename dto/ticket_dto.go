package dto

import "ticketdesk/models"

type CreateTicketDTO struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Priority    models.TicketPriority  `json:"priority"`
	Customer    *models.TicketCustomer `json:"customer"`
}

// UpdateTicketDTO carries a partial update. Pointer fields distinguish
// "absent" from zero values; absent fields keep their stored value.
type UpdateTicketDTO struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Priority    *models.TicketPriority `json:"priority"`
	Status      *models.TicketStatus   `json:"status"`
	Customer    *models.TicketCustomer `json:"customer"`
}
