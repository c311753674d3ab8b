package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddPatient(ctx context.Context, name, condition string) (*Patient, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	p := NewPatient(name, condition)
	if err := s.repo.Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) AddDoctor(ctx context.Context, name, specialty string) (*Doctor, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	d := NewDoctor(name, specialty)
	if err := s.repo.Add(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Remove(ctx, id)
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (Person, error) {
	return s.repo.FindByID(ctx, id)
}

// Patient resolves id to a *Patient, rejecting non-patient entries.
func (s *Service) Patient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pat, ok := p.(*Patient)
	if !ok {
		return nil, fmt.Errorf("person %s is not a patient", id)
	}
	return pat, nil
}

// Doctor resolves id to a *Doctor, rejecting non-doctor entries.
func (s *Service) Doctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, ok := p.(*Doctor)
	if !ok {
		return nil, fmt.Errorf("person %s is not a doctor", id)
	}
	return doc, nil
}

func (s *Service) Patients(ctx context.Context) ([]*Patient, error) {
	persons, err := s.repo.ListByKind(ctx, KindPatient)
	if err != nil {
		return nil, err
	}
	out := make([]*Patient, 0, len(persons))
	for _, p := range persons {
		out = append(out, p.(*Patient))
	}
	return out, nil
}

func (s *Service) Doctors(ctx context.Context) ([]*Doctor, error) {
	persons, err := s.repo.ListByKind(ctx, KindDoctor)
	if err != nil {
		return nil, err
	}
	out := make([]*Doctor, 0, len(persons))
	for _, p := range persons {
		out = append(out, p.(*Doctor))
	}
	return out, nil
}

func (s *Service) All(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}
