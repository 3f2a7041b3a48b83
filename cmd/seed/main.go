package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ticketdesk/config"
	"ticketdesk/models"
	"ticketdesk/repositories"
)

var titles = []string{
	"Login issue after password reset",
	"Invoice missing from billing page",
	"Dashboard widgets not loading",
	"Cannot export report as CSV",
	"Two-factor codes rejected",
	"Email notifications delayed",
	"Search returns stale results",
	"Dark mode colors unreadable",
	"Webhook deliveries failing",
	"Account upgrade not applied",
}

var customers = []models.TicketCustomer{
	{Name: "Ava Martinez", Email: "ava.martinez@example.com"},
	{Name: "Liam Chen", Email: "liam.chen@example.com"},
	{Name: "Noah Patel", Email: "noah.patel@example.com"},
	{Name: "Emma Johansson", Email: "emma.johansson@example.com"},
	{Name: "Sofia Rossi", Email: "sofia.rossi@example.com"},
}

var statuses = []models.TicketStatus{
	models.TicketStatusOpen,
	models.TicketStatusPending,
	models.TicketStatusClosed,
}

var priorities = []models.TicketPriority{
	models.TicketPriorityLow,
	models.TicketPriorityMedium,
	models.TicketPriorityHigh,
}

// Seeds the ticket database with sample data for local frontend work.
// Replaces whatever the document currently holds.
func main() {
	count := flag.Int("count", 25, "number of sample tickets to generate")
	flag.Parse()

	config.LoadConfig()
	repo := repositories.NewFileTicketRepo(config.DBPath)

	base := time.Now().UTC()
	seeded := make([]models.Ticket, 0, *count)
	for i := 0; i < *count; i++ {
		// Spread updatedAt values out so sorting and paging have something
		// to chew on.
		updated := base.Add(-time.Duration(i*7) * time.Hour)
		created := updated.Add(-48 * time.Hour)
		seeded = append(seeded, models.Ticket{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("%s (#%d)", titles[i%len(titles)], i+1),
			Description: fmt.Sprintf("Reported via support form. Sample ticket %d generated for local development.", i+1),
			Priority:    priorities[i%len(priorities)],
			Status:      statuses[i%len(statuses)],
			Customer:    customers[i%len(customers)],
			CreatedAt:   models.FormatTimestamp(created),
			UpdatedAt:   models.FormatTimestamp(updated),
		})
	}

	err := repo.Mutate(func(tickets *[]models.Ticket) error {
		*tickets = seeded
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed tickets: %v", err)
	}
	log.Printf("Seeded %d tickets into %s", len(seeded), config.DBPath)
}
