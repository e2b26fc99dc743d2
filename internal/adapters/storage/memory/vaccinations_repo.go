package memory

import (
	"context"
	"errors"
	"sync"

	"petcare-hub/internal/domain/vaccinations"
)

type vaccinationRepo struct {
	mu    sync.RWMutex
	byID  map[string]vaccinations.Vaccination
	byPet map[string][]string // petID -> ids en orden de alta
}

func NewVaccinationRepo() vaccinations.Repository {
	return &vaccinationRepo{
		byID:  make(map[string]vaccinations.Vaccination),
		byPet: make(map[string][]string),
	}
}

func (r *vaccinationRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.ID == "" {
		return errors.New("vaccination id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("vaccination already exists")
	}
	r.byID[v.ID] = v
	r.byPet[v.PetID] = append(r.byPet[v.PetID], v.ID)
	return nil
}

func (r *vaccinationRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccinations.Vaccination{}, vaccinations.ErrNotFound
	}
	return v, nil
}

func (r *vaccinationRepo) ListByPet(ctx context.Context, petID string) ([]vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byPet[petID]
	out := make([]vaccinations.Vaccination, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *vaccinationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccinations.ErrNotFound
	}
	delete(r.byID, id)

	ids := r.byPet[v.PetID]
	for i, x := range ids {
		if x == id {
			r.byPet[v.PetID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
