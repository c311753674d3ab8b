package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/rooms"
	"github.com/hms/hms/internal/domain/roster"
	"github.com/hms/hms/internal/domain/scheduling"
)

type fixture struct {
	roster    *roster.Service
	scheduler *scheduling.Service
	allocator *rooms.Allocator
	ledger    *billing.Ledger
	view      *View
}

func newFixture() *fixture {
	r := roster.NewService(roster.NewMemRepository())
	s := scheduling.NewService(scheduling.NewMemRepository(), 0)
	a := rooms.NewAllocator([]string{"101", "102", "103"})
	l := billing.NewLedger(billing.NewMemRepository())
	return &fixture{roster: r, scheduler: s, allocator: a, ledger: l, view: NewView(r, s, a, l)}
}

func TestDoctorAppointmentCounts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p, _ := f.roster.AddPatient(ctx, "P1", "a")
	d1, _ := f.roster.AddDoctor(ctx, "D1", "x")
	d2, _ := f.roster.AddDoctor(ctx, "D2", "y")

	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	f.scheduler.Schedule(ctx, p.ID, d1.ID, base)
	f.scheduler.Schedule(ctx, p.ID, d1.ID, base.Add(time.Hour))
	f.scheduler.Schedule(ctx, p.ID, d2.ID, base)

	counts, err := f.view.DoctorAppointmentCounts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(counts))
	}
	if counts[0].DoctorName != "D1" || counts[0].Appointments != 2 {
		t.Errorf("expected D1 with 2 appointments, got %+v", counts[0])
	}
	if counts[1].DoctorName != "D2" || counts[1].Appointments != 1 {
		t.Errorf("expected D2 with 1 appointment, got %+v", counts[1])
	}
}

func TestDoctorAppointmentCounts_OrphanedDoctor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p, _ := f.roster.AddPatient(ctx, "P1", "a")
	d, _ := f.roster.AddDoctor(ctx, "D1", "x")
	f.scheduler.Schedule(ctx, p.ID, d.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	f.roster.Remove(ctx, d.ID)

	counts, err := f.view.DoctorAppointmentCounts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 1 {
		t.Fatalf("expected the orphaned reference to be reported, got %d rows", len(counts))
	}
	if counts[0].DoctorID != d.ID || counts[0].DoctorName != "" || counts[0].Appointments != 1 {
		t.Errorf("unexpected orphan row: %+v", counts[0])
	}
}

func TestPatientStatuses(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p1, _ := f.roster.AddPatient(ctx, "P1", "fracture")
	p2, _ := f.roster.AddPatient(ctx, "P2", "migraine")
	f.allocator.Assign(p1, "101")
	p1.Prescriptions = append(p1.Prescriptions, "paracetamol 500mg")

	b, _ := f.ledger.Open(ctx, p1.ID)
	f.ledger.AddCharge(b, billing.Charge{Description: "c", Amount: 300})

	rows, err := f.view.PatientStatuses(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	got := rows[0]
	if !got.Admitted || got.RoomNumber != "101" || got.Prescriptions != 1 || got.BilledTotal != 300 {
		t.Errorf("unexpected row for P1: %+v", got)
	}
	if rows[1].PatientID != p2.ID || rows[1].Admitted {
		t.Errorf("unexpected row for P2: %+v", rows[1])
	}
}

func TestTopBillingPatient(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p1, _ := f.roster.AddPatient(ctx, "P1", "a")
	p2, _ := f.roster.AddPatient(ctx, "P2", "b")

	b1, _ := f.ledger.Open(ctx, p1.ID)
	f.ledger.AddCharge(b1, billing.Charge{Amount: 500})
	b2, _ := f.ledger.Open(ctx, p2.ID)
	f.ledger.AddCharge(b2, billing.Charge{Amount: 400})
	b3, _ := f.ledger.Open(ctx, p2.ID)
	f.ledger.AddCharge(b3, billing.Charge{Amount: 300})

	top, err := f.view.TopBillingPatient(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top == nil || top.PatientID != p2.ID || top.Total != 700 || top.Bills != 2 {
		t.Fatalf("expected P2 with aggregate 700 over 2 bills, got %+v", top)
	}
	if top.Name != "P2" {
		t.Errorf("expected resolved name, got %q", top.Name)
	}
}

func TestTopBillingPatient_TieFirstBilled(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p1, _ := f.roster.AddPatient(ctx, "P1", "a")
	p2, _ := f.roster.AddPatient(ctx, "P2", "b")

	b1, _ := f.ledger.Open(ctx, p1.ID)
	f.ledger.AddCharge(b1, billing.Charge{Amount: 500})
	b2, _ := f.ledger.Open(ctx, p2.ID)
	f.ledger.AddCharge(b2, billing.Charge{Amount: 500})

	top, err := f.view.TopBillingPatient(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top.PatientID != p1.ID {
		t.Errorf("ties resolve to the patient billed first, got %+v", top)
	}
}

func TestTopBillingPatient_NoBills(t *testing.T) {
	f := newFixture()
	top, err := f.view.TopBillingPatient(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top != nil {
		t.Errorf("expected nil without bills, got %+v", top)
	}
}

func TestSessionSummary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p, _ := f.roster.AddPatient(ctx, "P1", "a")
	d, _ := f.roster.AddDoctor(ctx, "D1", "x")
	f.scheduler.Schedule(ctx, p.ID, d.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	f.allocator.Assign(p, "102")
	f.ledger.Open(ctx, p.ID)

	sum, err := f.view.SessionSummary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Patients != 1 || sum.Doctors != 1 || sum.Appointments != 1 || sum.Bills != 1 {
		t.Errorf("unexpected counts: %+v", sum)
	}
	if sum.OccupiedRooms != 1 || len(sum.AvailableRooms) != 2 {
		t.Errorf("unexpected room figures: %+v", sum)
	}
}

func TestFindMeasure(t *testing.T) {
	if FindMeasure("session-summary") == nil {
		t.Error("expected predefined measure to resolve")
	}
	if FindMeasure("nope") != nil {
		t.Error("expected nil for unknown measure")
	}
}
