package billing

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// PaymentObserver is notified when a bill is paid. Observers run
// synchronously in registration order; an observer returning an error
// aborts the remaining notifications.
type PaymentObserver interface {
	BillPaid(ctx context.Context, b *Bill) error
}

// PaymentObserverFunc adapts a function to the PaymentObserver
// interface.
type PaymentObserverFunc func(ctx context.Context, b *Bill) error

func (f PaymentObserverFunc) BillPaid(ctx context.Context, b *Bill) error { return f(ctx, b) }

type subscription struct {
	id  int
	obs PaymentObserver
}

// Ledger opens bills, accumulates charges and fans out payment
// notifications.
type Ledger struct {
	repo Repository

	mu     sync.Mutex
	subs   []subscription
	nextID int
}

func NewLedger(repo Repository) *Ledger {
	return &Ledger{repo: repo}
}

// Open creates an empty bill for the patient and records it.
func (l *Ledger) Open(ctx context.Context, patientID uuid.UUID) (*Bill, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	b := NewBill(patientID)
	if err := l.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AddCharge appends a line item to a bill. Amounts are taken as
// given; negative values pass through unchecked.
func (l *Ledger) AddCharge(b *Bill, c Charge) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b.Charges = append(b.Charges, c)
}

// Subscribe registers an observer for payment notifications and
// returns a handle for Unsubscribe.
func (l *Ledger) Subscribe(obs PaymentObserver) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.subs = append(l.subs, subscription{id: l.nextID, obs: obs})
	return l.nextID
}

// Unsubscribe removes a previously registered observer.
func (l *Ledger) Unsubscribe(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.subs {
		if s.id == id {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}

// Pay notifies every registered observer of the finalized bill, in
// registration order, in the caller's execution context. The first
// observer error stops the fan-out and is returned. Calling Pay more
// than once for the same bill is tolerated but is a caller misuse.
func (l *Ledger) Pay(ctx context.Context, b *Bill) error {
	l.mu.Lock()
	subs := make([]subscription, len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	for _, s := range subs {
		if err := s.obs.BillPaid(ctx, b); err != nil {
			return fmt.Errorf("payment notification: %w", err)
		}
	}
	return nil
}

// Bill resolves a bill by id.
func (l *Ledger) Bill(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return l.repo.GetByID(ctx, id)
}

// Bills returns every bill opened this session, in insertion order.
func (l *Ledger) Bills(ctx context.Context) ([]*Bill, error) {
	return l.repo.List(ctx)
}

// BillsByPatient returns the bills opened for one patient.
func (l *Ledger) BillsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Bill, error) {
	return l.repo.ListByPatient(ctx, patientID)
}
