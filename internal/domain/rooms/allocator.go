// Package rooms assigns patients to a fixed inventory of rooms. At
// most one patient occupies a room at a time.
package rooms

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/domain/roster"
)

var (
	// ErrInvalidRoom is returned when the room id is not part of the
	// configured inventory.
	ErrInvalidRoom = errors.New("invalid room")
	// ErrRoomOccupied is returned when another patient already holds
	// the room.
	ErrRoomOccupied = errors.New("room occupied")
	// ErrNotAdmitted is returned when discharging a patient that has
	// no room.
	ErrNotAdmitted = errors.New("patient not admitted")
)

// Allocator tracks room occupancy. The inventory is fixed at
// construction; occupancy maps room id to the holding patient.
type Allocator struct {
	mu        sync.RWMutex
	inventory []string
	valid     map[string]bool
	occupied  map[string]uuid.UUID
}

func NewAllocator(inventory []string) *Allocator {
	valid := make(map[string]bool, len(inventory))
	inv := make([]string, 0, len(inventory))
	for _, r := range inventory {
		if valid[r] {
			continue
		}
		valid[r] = true
		inv = append(inv, r)
	}
	return &Allocator{
		inventory: inv,
		valid:     valid,
		occupied:  make(map[string]uuid.UUID),
	}
}

// Assign places a patient into a room and marks them admitted.
//
// Reassigning an already-admitted patient to a different free room
// succeeds but does not release the previous room; the stale entry
// stays until that patient is discharged.
func (a *Allocator) Assign(p *roster.Patient, roomID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.valid[roomID] {
		return ErrInvalidRoom
	}
	if holder, ok := a.occupied[roomID]; ok && holder != p.ID {
		return ErrRoomOccupied
	}
	a.occupied[roomID] = p.ID
	p.RoomNumber = roomID
	p.Admitted = true
	return nil
}

// Discharge releases the patient's current room and clears their
// admission state.
func (a *Allocator) Discharge(p *roster.Patient) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !p.Admitted || p.RoomNumber == "" {
		return ErrNotAdmitted
	}
	delete(a.occupied, p.RoomNumber)
	p.RoomNumber = ""
	p.Admitted = false
	return nil
}

// AvailableRooms lists unoccupied rooms in inventory order.
func (a *Allocator) AvailableRooms() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, 0, len(a.inventory))
	for _, r := range a.inventory {
		if _, taken := a.occupied[r]; !taken {
			out = append(out, r)
		}
	}
	return out
}

// Occupant returns the patient holding a room, if any.
func (a *Allocator) Occupant(roomID string) (uuid.UUID, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	id, ok := a.occupied[roomID]
	return id, ok
}

// OccupiedCount returns the number of rooms currently held.
func (a *Allocator) OccupiedCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.occupied)
}

// Inventory returns the configured room ids in declaration order.
func (a *Allocator) Inventory() []string {
	out := make([]string, len(a.inventory))
	copy(out, a.inventory)
	return out
}
