package roster

import (
	"time"

	"github.com/google/uuid"
)

// Kind tags the concrete variant behind the Person interface.
type Kind string

const (
	KindPatient Kind = "patient"
	KindDoctor  Kind = "doctor"
)

// Person is the common view over roster entries. IDs are generated at
// creation and never change; names are mutable.
type Person interface {
	PersonID() uuid.UUID
	PersonName() string
	Rename(name string)
	Kind() Kind
}

// Patient is a roster entry under care. RoomNumber is empty while the
// patient is not admitted; Prescriptions is append-only.
type Patient struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Condition     string    `json:"condition"`
	RoomNumber    string    `json:"room_number,omitempty"`
	Admitted      bool      `json:"admitted"`
	Prescriptions []string  `json:"prescriptions,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewPatient(name, condition string) *Patient {
	return &Patient{
		ID:        uuid.New(),
		Name:      name,
		Condition: condition,
		CreatedAt: time.Now(),
	}
}

func (p *Patient) PersonID() uuid.UUID { return p.ID }
func (p *Patient) PersonName() string  { return p.Name }
func (p *Patient) Rename(name string)  { p.Name = name }
func (p *Patient) Kind() Kind          { return KindPatient }

// Doctor is a roster entry providing care.
type Doctor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewDoctor(name, specialty string) *Doctor {
	return &Doctor{
		ID:        uuid.New(),
		Name:      name,
		Specialty: specialty,
		CreatedAt: time.Now(),
	}
}

func (d *Doctor) PersonID() uuid.UUID { return d.ID }
func (d *Doctor) PersonName() string  { return d.Name }
func (d *Doctor) Rename(name string)  { d.Name = name }
func (d *Doctor) Kind() Kind          { return KindDoctor }
