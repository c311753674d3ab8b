// Package reporting produces read-only summaries over the session
// state. It never mutates the services it reads from.
package reporting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/rooms"
	"github.com/hms/hms/internal/domain/roster"
	"github.com/hms/hms/internal/domain/scheduling"
)

// MeasureDefinition describes an available report.
type MeasureDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PredefinedMeasures lists the reports the console can render.
var PredefinedMeasures = []MeasureDefinition{
	{
		ID:          "doctor-appointment-counts",
		Name:        "Appointments per Doctor",
		Description: "Number of booked appointments grouped by doctor",
	},
	{
		ID:          "patient-status",
		Name:        "Patient Status",
		Description: "Admission, room, prescriptions and billed totals per patient",
	},
	{
		ID:          "top-billing-patient",
		Name:        "Top Billing Patient",
		Description: "Patient with the highest aggregate bill total",
	},
	{
		ID:          "session-summary",
		Name:        "Session Summary",
		Description: "Entity counts and available rooms",
	},
}

// DoctorCount is one row of the per-doctor appointment report.
type DoctorCount struct {
	DoctorID     uuid.UUID `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name"`
	Specialty    string    `json:"specialty"`
	Appointments int       `json:"appointments"`
}

// PatientStatus is one row of the per-patient status report.
type PatientStatus struct {
	PatientID     uuid.UUID `json:"patient_id"`
	Name          string    `json:"name"`
	Condition     string    `json:"condition"`
	RoomNumber    string    `json:"room_number,omitempty"`
	Admitted      bool      `json:"admitted"`
	Prescriptions int       `json:"prescriptions"`
	BilledTotal   float64   `json:"billed_total"`
}

// TopBiller identifies the patient with the highest aggregate bill
// total.
type TopBiller struct {
	PatientID uuid.UUID `json:"patient_id"`
	Name      string    `json:"name"`
	Total     float64   `json:"total"`
	Bills     int       `json:"bills"`
}

// Summary aggregates session-wide counts.
type Summary struct {
	GeneratedAt    time.Time `json:"generated_at"`
	Patients       int       `json:"patients"`
	Doctors        int       `json:"doctors"`
	Appointments   int       `json:"appointments"`
	Bills          int       `json:"bills"`
	OccupiedRooms  int       `json:"occupied_rooms"`
	AvailableRooms []string  `json:"available_rooms"`
}

// View reads across the roster, scheduler, allocator and ledger.
type View struct {
	roster    *roster.Service
	scheduler *scheduling.Service
	allocator *rooms.Allocator
	ledger    *billing.Ledger
}

func NewView(r *roster.Service, s *scheduling.Service, a *rooms.Allocator, l *billing.Ledger) *View {
	return &View{roster: r, scheduler: s, allocator: a, ledger: l}
}

// DoctorAppointmentCounts groups appointments by doctor, in roster
// order. Appointments referencing a doctor no longer on the roster
// are reported under an empty name.
func (v *View) DoctorAppointmentCounts(ctx context.Context) ([]DoctorCount, error) {
	doctors, err := v.roster.Doctors(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := v.scheduler.All(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(doctors))
	for _, a := range appts {
		counts[a.DoctorID]++
	}

	rows := make([]DoctorCount, 0, len(doctors))
	seen := make(map[uuid.UUID]bool, len(doctors))
	for _, d := range doctors {
		rows = append(rows, DoctorCount{
			DoctorID:     d.ID,
			DoctorName:   d.Name,
			Specialty:    d.Specialty,
			Appointments: counts[d.ID],
		})
		seen[d.ID] = true
	}
	// Orphaned references from deleted doctors keep their counts.
	for _, a := range appts {
		if !seen[a.DoctorID] {
			rows = append(rows, DoctorCount{DoctorID: a.DoctorID, Appointments: counts[a.DoctorID]})
			seen[a.DoctorID] = true
		}
	}
	return rows, nil
}

// PatientStatuses returns one row per patient, in roster order.
func (v *View) PatientStatuses(ctx context.Context) ([]PatientStatus, error) {
	patients, err := v.roster.Patients(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := v.ledger.Bills(ctx)
	if err != nil {
		return nil, err
	}

	billed := make(map[uuid.UUID]float64)
	for _, b := range bills {
		billed[b.PatientID] += b.Total()
	}

	rows := make([]PatientStatus, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, PatientStatus{
			PatientID:     p.ID,
			Name:          p.Name,
			Condition:     p.Condition,
			RoomNumber:    p.RoomNumber,
			Admitted:      p.Admitted,
			Prescriptions: len(p.Prescriptions),
			BilledTotal:   billed[p.ID],
		})
	}
	return rows, nil
}

// TopBillingPatient finds the patient with the highest aggregate
// total across all their bills. Grouping follows bill insertion
// order, so ties resolve to the patient billed first. Returns nil
// when no bills exist.
func (v *View) TopBillingPatient(ctx context.Context) (*TopBiller, error) {
	bills, err := v.ledger.Bills(ctx)
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, nil
	}

	totals := make(map[uuid.UUID]float64)
	counts := make(map[uuid.UUID]int)
	var order []uuid.UUID
	for _, b := range bills {
		if _, ok := totals[b.PatientID]; !ok {
			order = append(order, b.PatientID)
		}
		totals[b.PatientID] += b.Total()
		counts[b.PatientID]++
	}

	top := order[0]
	for _, id := range order[1:] {
		if totals[id] > totals[top] {
			top = id
		}
	}

	result := &TopBiller{PatientID: top, Total: totals[top], Bills: counts[top]}
	if p, err := v.roster.Patient(ctx, top); err == nil {
		result.Name = p.Name
	}
	return result, nil
}

// SessionSummary returns aggregate counts and the available rooms.
func (v *View) SessionSummary(ctx context.Context) (*Summary, error) {
	patients, err := v.roster.Patients(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := v.roster.Doctors(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := v.scheduler.All(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := v.ledger.Bills(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		GeneratedAt:    time.Now(),
		Patients:       len(patients),
		Doctors:        len(doctors),
		Appointments:   len(appts),
		Bills:          len(bills),
		OccupiedRooms:  v.allocator.OccupiedCount(),
		AvailableRooms: v.allocator.AvailableRooms(),
	}, nil
}

// FindMeasure looks up a measure by ID, useful for testing.
func FindMeasure(id string) *MeasureDefinition {
	for i := range PredefinedMeasures {
		if PredefinedMeasures[i].ID == id {
			return &PredefinedMeasures[i]
		}
	}
	return nil
}
