package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/config"
	"ticketdesk/models"
	"ticketdesk/routes"
	"ticketdesk/services"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.DBPath = filepath.Join(t.TempDir(), "db.json")

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTicket(t *testing.T, r *gin.Engine, title string) models.Ticket {
	w := do(t, r, http.MethodPost, "/api/tickets",
		`{"title":"`+title+`","description":"something broke","customer":{"name":"Ava","email":"ava@example.com"}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var ticket models.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	return ticket
}

func TestCreateTicketEndpoint(t *testing.T) {
	r := setupRouter(t)

	ticket := createTicket(t, r, "Login issue")
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "Login issue", ticket.Title)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.Equal(t, models.TicketPriorityMedium, ticket.Priority)
	assert.NotEmpty(t, ticket.UpdatedAt)
}

func TestCreateTicketEndpoint_MissingFields(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/tickets", `{"title":"only a title"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "message")
}

func TestListTicketsEndpoint(t *testing.T) {
	r := setupRouter(t)

	createTicket(t, r, "Login issue")
	createTicket(t, r, "Billing question")
	createTicket(t, r, "Printer jam")

	w := do(t, r, http.MethodGet, "/api/tickets?search=login", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page services.TicketPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Tickets, 1)
	assert.Equal(t, "Login issue", page.Tickets[0].Title)
	assert.Equal(t, services.Pagination{Total: 1, Page: 1, Limit: 7, TotalPages: 1}, page.Pagination)
}

func TestListTicketsEndpoint_StatusAndPaging(t *testing.T) {
	r := setupRouter(t)

	for i := 0; i < 9; i++ {
		createTicket(t, r, "Ticket")
	}

	w := do(t, r, http.MethodGet, "/api/tickets?page=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page services.TicketPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Tickets, 2)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 9, page.Pagination.Total)

	// Lenient status filter: unknown values are ignored, not rejected.
	w = do(t, r, http.MethodGet, "/api/tickets?status=bogus", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 9, page.Pagination.Total)

	// Strict filter keeps only matching statuses (all are open here).
	w = do(t, r, http.MethodGet, "/api/tickets?status=closed", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 0, page.Pagination.Total)
}

func TestGetTicketEndpoint(t *testing.T) {
	r := setupRouter(t)

	ticket := createTicket(t, r, "Login issue")

	w := do(t, r, http.MethodGet, "/api/tickets/"+ticket.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, ticket, got)
}

func TestGetTicketEndpoint_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/tickets/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Ticket not found"}`, w.Body.String())
}

func TestUpdateTicketEndpoint(t *testing.T) {
	r := setupRouter(t)

	ticket := createTicket(t, r, "Login issue")

	w := do(t, r, http.MethodPatch, "/api/tickets/"+ticket.ID, `{"status":"closed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.TicketStatusClosed, updated.Status)
	assert.Equal(t, ticket.Title, updated.Title)
	assert.Equal(t, ticket.Customer, updated.Customer)
}

func TestUpdateTicketEndpoint_InvalidEnum(t *testing.T) {
	r := setupRouter(t)

	ticket := createTicket(t, r, "Login issue")

	w := do(t, r, http.MethodPatch, "/api/tickets/"+ticket.ID, `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"status must be one of: open, pending, closed"}`, w.Body.String())
}

func TestUpdateTicketEndpoint_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPatch, "/api/tickets/nope", `{"status":"closed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTicketEndpoint(t *testing.T) {
	r := setupRouter(t)

	ticket := createTicket(t, r, "Login issue")

	w := do(t, r, http.MethodDelete, "/api/tickets/"+ticket.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodDelete, "/api/tickets/"+ticket.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/tickets/"+ticket.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
