package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Appointment links a patient and a doctor at a point in time. The
// patient and doctor ids are weak references into the roster; deleting
// a person does not cascade here.
type Appointment struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	When      time.Time `json:"when"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAppointment(patientID, doctorID uuid.UUID, when time.Time) *Appointment {
	return &Appointment{
		ID:        uuid.New(),
		PatientID: patientID,
		DoctorID:  doctorID,
		When:      when,
		CreatedAt: time.Now(),
	}
}

// Matches reports whether two appointments collide on the
// (patient, doctor, when) triple. Exact timestamp equality only;
// interval overlap is deliberately not considered.
func (a *Appointment) Matches(patientID, doctorID uuid.UUID, when time.Time) bool {
	return a.PatientID == patientID && a.DoctorID == doctorID && a.When.Equal(when)
}
