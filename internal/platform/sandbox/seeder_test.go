package sandbox

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/session"
)

func newTestSession() *session.Session {
	cfg := &config.Config{
		Rooms:        []string{"101", "102", "103", "104", "105"},
		Currency:     "$",
		OperatorUser: "admin",
	}
	return session.New(cfg, zerolog.Nop())
}

func TestSeed(t *testing.T) {
	sess := newTestSession()
	res, err := Seed(context.Background(), sess, DefaultSeedConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Patients != 4 || res.Doctors != 3 {
		t.Errorf("unexpected roster counts: %+v", res)
	}
	if res.Admissions != 2 {
		t.Errorf("expected 2 admissions, got %d", res.Admissions)
	}
	if res.Bills != 2 || res.Charges != 4 {
		t.Errorf("unexpected billing counts: %+v", res)
	}

	ctx := context.Background()
	patients, err := sess.Roster.Patients(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != res.Patients {
		t.Errorf("roster does not reflect seeded patients: %d vs %d", len(patients), res.Patients)
	}
	appts, err := sess.Scheduler.All(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appts) != res.Appointments {
		t.Errorf("scheduler does not reflect seeded appointments: %d vs %d", len(appts), res.Appointments)
	}
	if got := len(sess.Rooms.AvailableRooms()); got != 3 {
		t.Errorf("expected 3 rooms left after 2 admissions, got %d", got)
	}
}

func TestSeed_Deterministic(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 42

	first, err := Seed(context.Background(), newTestSession(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Seed(context.Background(), newTestSession(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *first != *second {
		t.Errorf("same seed must produce the same result: %+v vs %+v", first, second)
	}
}

func TestSeed_EmptyConfig(t *testing.T) {
	res, err := Seed(context.Background(), newTestSession(), SeedConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *res != (Result{}) {
		t.Errorf("zero config must create nothing, got %+v", res)
	}
}
