// Package sandbox seeds reproducible demo data into a session. All
// inserts go through the domain services, never directly into their
// state, so seeding exercises the same paths as the menu.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/roster"
	"github.com/hms/hms/internal/session"
)

// SeedConfig controls the volume and shape of generated demo data.
type SeedConfig struct {
	PatientCount            int   `json:"patientCount"`
	DoctorCount             int   `json:"doctorCount"`
	AppointmentsPerDoctor   int   `json:"appointmentsPerDoctor"`
	PrescriptionsPerPatient int   `json:"prescriptionsPerPatient"`
	AdmitPatients           int   `json:"admitPatients"`
	BillCount               int   `json:"billCount"`
	ChargesPerBill          int   `json:"chargesPerBill"`
	Seed                    int64 `json:"seed"`
}

// DefaultSeedConfig returns a SeedConfig sized for the demo session.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		PatientCount:            4,
		DoctorCount:             3,
		AppointmentsPerDoctor:   2,
		PrescriptionsPerPatient: 1,
		AdmitPatients:           2,
		BillCount:               2,
		ChargesPerBill:          2,
		Seed:                    1,
	}
}

// Result summarizes what a seed run created.
type Result struct {
	Patients      int `json:"patients"`
	Doctors       int `json:"doctors"`
	Appointments  int `json:"appointments"`
	Prescriptions int `json:"prescriptions"`
	Admissions    int `json:"admissions"`
	Bills         int `json:"bills"`
	Charges       int `json:"charges"`
}

var (
	patientNames = []string{"Asha Verma", "Rohan Iyer", "Meera Pillai", "Vikram Singh", "Nina Rao", "Arjun Das", "Kavya Nair", "Sameer Joshi"}
	conditions   = []string{"fracture", "pneumonia", "migraine", "appendicitis", "hypertension", "asthma"}
	doctorNames  = []string{"Dr. Leela Menon", "Dr. Tarun Kapoor", "Dr. Sara Abraham", "Dr. Nikhil Bhat", "Dr. Priya Shah"}
	specialties  = []string{"orthopedics", "pulmonology", "neurology", "general surgery", "cardiology"}
	medications  = []string{"paracetamol 500mg", "amoxicillin 250mg", "ibuprofen 400mg", "atorvastatin 10mg", "salbutamol inhaler"}
	chargeItems  = []string{"consultation", "x-ray", "blood panel", "room charge", "pharmacy", "physiotherapy"}
)

// Seed populates the session and reports what was created. Generation
// is deterministic for a given SeedConfig.
func Seed(ctx context.Context, sess *session.Session, cfg SeedConfig) (*Result, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	res := &Result{}

	patients := make([]*roster.Patient, 0, cfg.PatientCount)
	for i := 0; i < cfg.PatientCount; i++ {
		name := patientNames[rng.Intn(len(patientNames))]
		cond := conditions[rng.Intn(len(conditions))]
		p, err := sess.Roster.AddPatient(ctx, name, cond)
		if err != nil {
			return nil, fmt.Errorf("seed patient: %w", err)
		}
		patients = append(patients, p)
		res.Patients++
	}

	doctors := make([]*roster.Doctor, 0, cfg.DoctorCount)
	for i := 0; i < cfg.DoctorCount; i++ {
		name := doctorNames[rng.Intn(len(doctorNames))]
		spec := specialties[rng.Intn(len(specialties))]
		d, err := sess.Roster.AddDoctor(ctx, name, spec)
		if err != nil {
			return nil, fmt.Errorf("seed doctor: %w", err)
		}
		doctors = append(doctors, d)
		res.Doctors++
	}

	if len(patients) > 0 {
		base := time.Now().Truncate(time.Hour).Add(24 * time.Hour)
		for _, d := range doctors {
			for j := 0; j < cfg.AppointmentsPerDoctor; j++ {
				p := patients[rng.Intn(len(patients))]
				when := base.Add(time.Duration(rng.Intn(14*24)) * time.Hour)
				if _, err := sess.Scheduler.Schedule(ctx, p.ID, d.ID, when); err != nil {
					// Duplicate draws are possible with a small pool; skip them.
					continue
				}
				sess.Metrics.AppointmentScheduled()
				res.Appointments++
			}
		}
	}

	for _, p := range patients {
		for j := 0; j < cfg.PrescriptionsPerPatient; j++ {
			med := medications[rng.Intn(len(medications))]
			if err := sess.Pharmacy.Add(p, med); err != nil {
				return nil, fmt.Errorf("seed prescription: %w", err)
			}
			sess.Metrics.PrescriptionAdded()
			res.Prescriptions++
		}
	}

	available := sess.Rooms.AvailableRooms()
	for i := 0; i < cfg.AdmitPatients && i < len(patients) && i < len(available); i++ {
		if err := sess.Rooms.Assign(patients[i], available[i]); err != nil {
			return nil, fmt.Errorf("seed admission: %w", err)
		}
		sess.Metrics.PatientAdmitted()
		res.Admissions++
	}

	for i := 0; i < cfg.BillCount && len(patients) > 0; i++ {
		p := patients[rng.Intn(len(patients))]
		bill, err := sess.Ledger.Open(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("seed bill: %w", err)
		}
		sess.Metrics.BillOpened()
		res.Bills++
		for j := 0; j < cfg.ChargesPerBill; j++ {
			sess.Ledger.AddCharge(bill, billing.Charge{
				Description: chargeItems[rng.Intn(len(chargeItems))],
				Amount:      float64(100 + rng.Intn(20)*25),
			})
			res.Charges++
		}
	}

	return res, nil
}
