package rooms

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hms/hms/internal/domain/roster"
)

var inventory = []string{"101", "102", "103", "104", "105"}

func TestAssign(t *testing.T) {
	a := NewAllocator(inventory)
	p := roster.NewPatient("Asha", "fracture")
	if err := a.Assign(p, "101"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Admitted {
		t.Error("expected patient to be admitted")
	}
	if p.RoomNumber != "101" {
		t.Errorf("expected room 101, got %q", p.RoomNumber)
	}
}

func TestAssign_InvalidRoom(t *testing.T) {
	a := NewAllocator(inventory)
	p := roster.NewPatient("Asha", "fracture")
	err := a.Assign(p, "999")
	if !errors.Is(err, ErrInvalidRoom) {
		t.Fatalf("expected ErrInvalidRoom, got %v", err)
	}
	if p.Admitted {
		t.Error("failed assignment must not admit the patient")
	}
}

func TestAssign_OccupiedRoomRejected(t *testing.T) {
	a := NewAllocator(inventory)
	first := roster.NewPatient("Asha", "fracture")
	second := roster.NewPatient("Rohan", "migraine")

	if err := a.Assign(first, "101"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Assign(second, "101"); !errors.Is(err, ErrRoomOccupied) {
		t.Fatalf("expected ErrRoomOccupied, got %v", err)
	}
	for _, r := range a.AvailableRooms() {
		if r == "101" {
			t.Error("occupied room must not be listed as available")
		}
	}
}

func TestDischarge(t *testing.T) {
	a := NewAllocator(inventory)
	p := roster.NewPatient("Asha", "fracture")
	if err := a.Assign(p, "101"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Discharge(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Admitted || p.RoomNumber != "" {
		t.Error("discharge must clear admission state")
	}
}

func TestDischarge_NotAdmitted(t *testing.T) {
	a := NewAllocator(inventory)
	p := roster.NewPatient("Asha", "fracture")
	if err := a.Discharge(p); !errors.Is(err, ErrNotAdmitted) {
		t.Fatalf("expected ErrNotAdmitted, got %v", err)
	}
}

func TestDischarge_FreesRoomForReassignment(t *testing.T) {
	a := NewAllocator(inventory)
	first := roster.NewPatient("Asha", "fracture")
	second := roster.NewPatient("Rohan", "migraine")

	if err := a.Assign(first, "101"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Discharge(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Assign(second, "101"); err != nil {
		t.Fatalf("room freed by discharge should be assignable, got %v", err)
	}
}

func TestAvailableRooms_DeterministicOrder(t *testing.T) {
	a := NewAllocator(inventory)
	want := []string{"101", "102", "103", "104", "105"}
	if got := a.AvailableRooms(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	p := roster.NewPatient("Asha", "fracture")
	if err := a.Assign(p, "103"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []string{"101", "102", "104", "105"}
	if got := a.AvailableRooms(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// Reassigning an admitted patient keeps the previous room occupied
// until discharge.
func TestAssign_ReassignmentDoesNotFreeOldRoom(t *testing.T) {
	a := NewAllocator(inventory)
	p := roster.NewPatient("Asha", "fracture")
	other := roster.NewPatient("Rohan", "migraine")

	if err := a.Assign(p, "101"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Assign(p, "102"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RoomNumber != "102" {
		t.Errorf("expected current room 102, got %q", p.RoomNumber)
	}
	// The stale occupancy for 101 blocks other patients.
	if err := a.Assign(other, "101"); !errors.Is(err, ErrRoomOccupied) {
		t.Fatalf("expected ErrRoomOccupied for stale room, got %v", err)
	}
	// Discharge frees only the current room.
	if err := a.Discharge(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, held := a.Occupant("101"); !held {
		t.Error("stale room should remain held after discharge")
	}
	if _, held := a.Occupant("102"); held {
		t.Error("current room should be freed by discharge")
	}
}

func TestNewAllocator_DropsDuplicateRooms(t *testing.T) {
	a := NewAllocator([]string{"101", "101", "102"})
	if got := a.Inventory(); !reflect.DeepEqual(got, []string{"101", "102"}) {
		t.Fatalf("expected deduplicated inventory, got %v", got)
	}
}
