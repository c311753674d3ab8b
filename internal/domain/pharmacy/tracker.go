// Package pharmacy records medications prescribed to patients.
package pharmacy

import (
	"fmt"
	"sync"

	"github.com/hms/hms/internal/domain/roster"
)

// Tracker appends medications to a patient's prescription record.
// Entries are free text; beyond being non-empty, validating the
// medication string is the caller's responsibility.
type Tracker struct {
	mu sync.Mutex
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Add(p *roster.Patient, medication string) error {
	if medication == "" {
		return fmt.Errorf("medication is required")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p.Prescriptions = append(p.Prescriptions, medication)
	return nil
}

// List returns the patient's prescriptions in the order they were
// added.
func (t *Tracker) List(p *roster.Patient) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(p.Prescriptions))
	copy(out, p.Prescriptions)
	return out
}
