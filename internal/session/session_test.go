package session

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Rooms:    []string{"101", "102"},
		Currency: "$",
	}
}

func TestNew_IndependentSessions(t *testing.T) {
	ctx := context.Background()
	a := New(testConfig(), zerolog.Nop())
	b := New(testConfig(), zerolog.Nop())

	if _, err := a.Roster.AddPatient(ctx, "Asha", "fracture"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := b.Roster.Patients(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("sessions share roster state: %+v", got)
	}
}

func TestNew_PaymentLogsObserved(t *testing.T) {
	ctx := context.Background()
	sess := New(testConfig(), zerolog.Nop())

	p, err := sess.Roster.AddPatient(ctx, "Asha", "fracture")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bill, err := sess.Ledger.Open(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The default log observer is registered at construction; paying
	// must succeed with it attached.
	if err := sess.Ledger.Pay(ctx, bill); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
