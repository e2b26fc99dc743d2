package memory

import (
	"context"
	"errors"
	"sync"

	"petcare-hub/internal/domain/grooming"

	"cloud.google.com/go/civil"
)

type bookingRepo struct {
	mu    sync.RWMutex
	byID  map[string]grooming.Booking
	order []string
}

func NewBookingRepo() grooming.Repository {
	return &bookingRepo{byID: make(map[string]grooming.Booking)}
}

func (r *bookingRepo) Create(ctx context.Context, b grooming.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		return errors.New("booking id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("booking already exists")
	}
	if b.Status == grooming.BookingBooked {
		for _, other := range r.byID {
			if other.Status == grooming.BookingBooked &&
				other.GroomerID == b.GroomerID &&
				other.Date == b.Date &&
				other.Slot == b.Slot {
				return grooming.ErrSlotTaken
			}
		}
	}
	r.byID[b.ID] = b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (grooming.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return grooming.Booking{}, grooming.ErrNotFound
	}
	return b, nil
}

func (r *bookingRepo) ListByUser(ctx context.Context, userID string) ([]grooming.Booking, error) {
	return r.filter(func(b grooming.Booking) bool { return b.UserID == userID }), nil
}

func (r *bookingRepo) ListByGroomerDay(ctx context.Context, groomerID string, day civil.Date) ([]grooming.Booking, error) {
	return r.filter(func(b grooming.Booking) bool { return b.GroomerID == groomerID && b.Date == day }), nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id string, status grooming.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return grooming.ErrNotFound
	}
	b.Status = status
	r.byID[id] = b
	return nil
}

func (r *bookingRepo) filter(keep func(grooming.Booking) bool) []grooming.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]grooming.Booking, 0)
	for _, id := range r.order {
		if b := r.byID[id]; keep(b) {
			out = append(out, b)
		}
	}
	return out
}
