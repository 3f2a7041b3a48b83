package repositories

type Repos struct {
	Ticket TicketRepo
}

func New(dbPath string) *Repos {
	return &Repos{
		Ticket: NewFileTicketRepo(dbPath),
	}
}
