// Package telemetry keeps in-process counters of session activity.
// The recorder is shared across services and read by the reports
// menu; it uses atomic counters so recording never contends with the
// operation being recorded.
package telemetry

import "sync/atomic"

// Recorder counts session operations.
type Recorder struct {
	scheduled           atomic.Int64
	duplicateRejected   atomic.Int64
	appointmentsDropped atomic.Int64
	admissions          atomic.Int64
	discharges          atomic.Int64
	prescriptions       atomic.Int64
	billsOpened         atomic.Int64
	payments            atomic.Int64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AppointmentScheduled() { r.scheduled.Add(1) }
func (r *Recorder) DuplicateRejected()    { r.duplicateRejected.Add(1) }
func (r *Recorder) AppointmentCancelled() { r.appointmentsDropped.Add(1) }
func (r *Recorder) PatientAdmitted()      { r.admissions.Add(1) }
func (r *Recorder) PatientDischarged()    { r.discharges.Add(1) }
func (r *Recorder) PrescriptionAdded()    { r.prescriptions.Add(1) }
func (r *Recorder) BillOpened()           { r.billsOpened.Add(1) }
func (r *Recorder) BillPaid()             { r.payments.Add(1) }

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Scheduled           int64 `json:"scheduled"`
	DuplicateRejected   int64 `json:"duplicate_rejected"`
	AppointmentsDropped int64 `json:"appointments_cancelled"`
	Admissions          int64 `json:"admissions"`
	Discharges          int64 `json:"discharges"`
	Prescriptions       int64 `json:"prescriptions"`
	BillsOpened         int64 `json:"bills_opened"`
	Payments            int64 `json:"payments"`
}

func (r *Recorder) Snapshot() Snapshot {
	return Snapshot{
		Scheduled:           r.scheduled.Load(),
		DuplicateRejected:   r.duplicateRejected.Load(),
		AppointmentsDropped: r.appointmentsDropped.Load(),
		Admissions:          r.admissions.Load(),
		Discharges:          r.discharges.Load(),
		Prescriptions:       r.prescriptions.Load(),
		BillsOpened:         r.billsOpened.Load(),
		Payments:            r.payments.Load(),
	}
}
