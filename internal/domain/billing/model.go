package billing

import (
	"time"

	"github.com/google/uuid"
)

// Charge is a single line item on a bill. Amounts are plain currency
// values; this layer does not reject negative amounts.
type Charge struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Bill accumulates charges for a patient. Charges are append-only;
// the patient id is a weak reference into the roster.
type Bill struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Charges   []Charge  `json:"charges"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBill(patientID uuid.UUID) *Bill {
	return &Bill{
		ID:        uuid.New(),
		PatientID: patientID,
		CreatedAt: time.Now(),
	}
}

// Total sums the charge amounts. Recomputed on every call so it always
// reflects the current charges.
func (b *Bill) Total() float64 {
	var total float64
	for _, c := range b.Charges {
		total += c.Amount
	}
	return total
}
