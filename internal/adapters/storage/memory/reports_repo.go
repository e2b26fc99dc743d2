package memory

import (
	"context"
	"errors"
	"sync"

	"petcare-hub/internal/domain/lostfound"
)

type reportRepo struct {
	mu    sync.RWMutex
	byID  map[string]lostfound.Report
	order []string
}

func NewReportRepo() lostfound.Repository {
	return &reportRepo{byID: make(map[string]lostfound.Report)}
}

func (r *reportRepo) Create(ctx context.Context, rep lostfound.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rep.ID == "" {
		return errors.New("report id required")
	}
	if _, exists := r.byID[rep.ID]; exists {
		return errors.New("report already exists")
	}
	r.byID[rep.ID] = rep
	r.order = append(r.order, rep.ID)
	return nil
}

func (r *reportRepo) Update(ctx context.Context, rep lostfound.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rep.ID]; !exists {
		return lostfound.ErrNotFound
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (lostfound.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.byID[id]
	if !ok {
		return lostfound.Report{}, lostfound.ErrNotFound
	}
	return rep, nil
}

func (r *reportRepo) List(ctx context.Context) ([]lostfound.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lostfound.Report, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
