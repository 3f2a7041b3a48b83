package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ticketdesk/models"
)

// document mirrors the on-disk layout: one JSON object holding the whole
// ticket list. Array order is preserved across rewrites.
type document struct {
	Tickets []models.Ticket `json:"tickets"`
}

type TicketRepo interface {
	ReadAll() ([]models.Ticket, error)
	Mutate(fn func(tickets *[]models.Ticket) error) error
}

// FileTicketRepo persists tickets as a single JSON document. Mutate holds an
// exclusive lock for the full read-modify-write-persist cycle; with
// whole-document storage two interleaved updates would otherwise overwrite
// each other's untouched fields.
type FileTicketRepo struct {
	path string
	mu   sync.Mutex
}

func NewFileTicketRepo(path string) *FileTicketRepo {
	return &FileTicketRepo{path: path}
}

// ReadAll returns a fresh point-in-time snapshot decoded from disk.
// A missing file reads as an empty list.
func (r *FileTicketRepo) ReadAll() ([]models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Tickets, nil
}

// Mutate applies fn to the current ticket list and persists the result
// durably before returning. An error from fn aborts without writing.
func (r *FileTicketRepo) Mutate(fn func(tickets *[]models.Ticket) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(&doc.Tickets); err != nil {
		return err
	}
	return r.store(doc)
}

func (r *FileTicketRepo) load() (document, error) {
	doc := document{Tickets: []models.Ticket{}}
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read ticket db %s: %w", r.path, err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode ticket db %s: %w", r.path, err)
	}
	if doc.Tickets == nil {
		doc.Tickets = []models.Ticket{}
	}
	return doc, nil
}

// store writes to a sibling temp file and renames it over the target so a
// crash mid-write cannot leave a truncated database behind.
func (r *FileTicketRepo) store(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ticket db: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return fmt.Errorf("write ticket db: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write ticket db: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write ticket db: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write ticket db: %w", err)
	}
	return nil
}
