package memory

import (
	"context"
	"errors"
	"sync"

	"petcare-hub/internal/domain/healthrecords"
)

type medicationRepo struct {
	mu    sync.RWMutex
	byID  map[string]healthrecords.Medication
	byPet map[string][]string // petID -> ids en orden de alta
}

func NewMedicationRepo() healthrecords.MedicationRepository {
	return &medicationRepo{
		byID:  make(map[string]healthrecords.Medication),
		byPet: make(map[string][]string),
	}
}

func (r *medicationRepo) Create(ctx context.Context, m healthrecords.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		return errors.New("medication id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("medication already exists")
	}
	r.byID[m.ID] = cloneMedication(m)
	r.byPet[m.PetID] = append(r.byPet[m.PetID], m.ID)
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (healthrecords.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return healthrecords.Medication{}, healthrecords.ErrNotFound
	}
	return cloneMedication(m), nil
}

func (r *medicationRepo) ListByPet(ctx context.Context, petID string) ([]healthrecords.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byPet[petID]
	out := make([]healthrecords.Medication, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneMedication(r.byID[id]))
	}
	return out, nil
}

func (r *medicationRepo) UpdateStatus(ctx context.Context, id string, status healthrecords.MedicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return healthrecords.ErrNotFound
	}
	m.Status = status
	r.byID[id] = m
	return nil
}

func cloneMedication(m healthrecords.Medication) healthrecords.Medication {
	if m.EndDate != nil {
		d := *m.EndDate
		m.EndDate = &d
	}
	if m.NextDose != nil {
		d := *m.NextDose
		m.NextDose = &d
	}
	return m
}

type appointmentRepo struct {
	mu    sync.RWMutex
	byID  map[string]healthrecords.Appointment
	byPet map[string][]string
}

func NewAppointmentRepo() healthrecords.AppointmentRepository {
	return &appointmentRepo{
		byID:  make(map[string]healthrecords.Appointment),
		byPet: make(map[string][]string),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, a healthrecords.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.byID[a.ID] = a
	r.byPet[a.PetID] = append(r.byPet[a.PetID], a.ID)
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (healthrecords.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return healthrecords.Appointment{}, healthrecords.ErrNotFound
	}
	return a, nil
}

func (r *appointmentRepo) ListByPet(ctx context.Context, petID string) ([]healthrecords.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byPet[petID]
	out := make([]healthrecords.Appointment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *appointmentRepo) UpdateState(ctx context.Context, id string, state healthrecords.AppointmentState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return healthrecords.ErrNotFound
	}
	a.State = state
	r.byID[id] = a
	return nil
}
