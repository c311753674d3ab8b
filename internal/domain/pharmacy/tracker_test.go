package pharmacy

import (
	"reflect"
	"testing"

	"github.com/hms/hms/internal/domain/roster"
)

func TestAdd(t *testing.T) {
	tr := NewTracker()
	p := roster.NewPatient("Asha", "fracture")
	if err := tr.Add(p, "paracetamol 500mg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tr.List(p); len(got) != 1 || got[0] != "paracetamol 500mg" {
		t.Fatalf("expected one prescription, got %v", got)
	}
}

func TestAdd_EmptyRejected(t *testing.T) {
	tr := NewTracker()
	p := roster.NewPatient("Asha", "fracture")
	if err := tr.Add(p, ""); err == nil {
		t.Error("expected error for empty medication")
	}
}

func TestAdd_NoDeduplication(t *testing.T) {
	tr := NewTracker()
	p := roster.NewPatient("Asha", "fracture")
	tr.Add(p, "ibuprofen 400mg")
	tr.Add(p, "ibuprofen 400mg")
	if got := tr.List(p); len(got) != 2 {
		t.Fatalf("duplicates are allowed, expected 2 entries, got %d", len(got))
	}
}

func TestList_InsertionOrder(t *testing.T) {
	tr := NewTracker()
	p := roster.NewPatient("Asha", "fracture")
	meds := []string{"one", "two", "three"}
	for _, m := range meds {
		tr.Add(p, m)
	}
	if got := tr.List(p); !reflect.DeepEqual(got, meds) {
		t.Fatalf("expected %v, got %v", meds, got)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	tr := NewTracker()
	p := roster.NewPatient("Asha", "fracture")
	tr.Add(p, "one")
	got := tr.List(p)
	got[0] = "mutated"
	if tr.List(p)[0] != "one" {
		t.Error("List must not expose the underlying slice")
	}
}
