package memory

import (
	"sync"

	"bordero/internal/models"
)

// Journal keeps the export log in process memory. It is used when no database
// is configured.
type Journal struct {
	mu      sync.Mutex
	entries []models.ExportEntry
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) SaveExport(entry models.ExportEntry) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry.ID = len(j.entries) + 1
	j.entries = append(j.entries, entry)

	return entry.ID, nil
}

// GetExports returns the journal, most recent first.
func (j *Journal) GetExports() ([]models.ExportEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]models.ExportEntry, 0, len(j.entries))
	for i := len(j.entries) - 1; i >= 0; i-- {
		out = append(out, j.entries[i])
	}

	return out, nil
}
