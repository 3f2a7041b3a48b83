package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"ticketdesk/dto"
	"ticketdesk/response"
	"ticketdesk/services"
)

type TicketHandler struct {
	service *services.TicketService
}

func NewTicketHandler(service *services.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// ListTickets godoc
// @Summary List tickets with filtering, search, sorting and pagination
// @Tags tickets
// @Produce json
// @Param status query string false "Filter by status (open|pending|closed); other values are ignored"
// @Param search query string false "Case-insensitive substring match on title"
// @Param sort query string false "Sort by updatedAt: asc or desc (default desc)"
// @Param page query int false "1-based page number, 7 tickets per page"
// @Success 200 {object} services.TicketPage
// @Failure 500 {object} response.ErrorResponse
// @Router /api/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	query := services.TicketQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Sort:   c.Query("sort"),
		Page:   page,
	}

	result, err := h.service.ListTickets(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTicket godoc
// @Summary Get a ticket by id
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} models.Ticket
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.service.GetTicket(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// CreateTicket godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param input body dto.CreateTicketDTO true "New ticket"
// @Success 201 {object} models.Ticket
// @Failure 400 {object} response.ErrorResponse "Missing or invalid fields"
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input dto.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
		return
	}

	ticket, err := h.service.CreateTicket(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// UpdateTicket godoc
// @Summary Partially update a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param input body dto.UpdateTicketDTO true "Fields to change"
// @Success 200 {object} models.Ticket
// @Failure 400 {object} response.ErrorResponse "Invalid status or priority"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var input dto.UpdateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
		return
	}

	ticket, err := h.service.UpdateTicket(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// DeleteTicket godoc
// @Summary Delete a ticket
// @Tags tickets
// @Param id path string true "Ticket ID"
// @Success 204 "Deleted"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.service.DeleteTicket(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	var verr services.ValidationError
	switch {
	case errors.Is(err, services.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: verr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: err.Error()})
	}
}
