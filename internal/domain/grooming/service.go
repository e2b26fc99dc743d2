package grooming

import (
	"context"
	"errors"
	"strings"
	"time"

	"petcare-hub/internal/listing"
	"petcare-hub/internal/ports/snapshot"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("booking not found")
	ErrForbidden    = errors.New("forbidden")
	ErrSlotTaken    = errors.New("time slot already booked")
	ErrPastDate     = errors.New("date is in the past")
)

const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

type Service struct {
	repo       Repository
	treatments snapshot.Source[Treatment]
	groomers   snapshot.Source[Groomer]
	now        func() time.Time
	loc        *time.Location
}

func NewService(repo Repository, treatments snapshot.Source[Treatment], groomers snapshot.Source[Groomer], loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:       repo,
		treatments: treatments,
		groomers:   groomers,
		now:        time.Now,
		loc:        loc,
	}
}

func (s *Service) Treatments(ctx context.Context, sort string) ([]Treatment, error) {
	price := func(t Treatment) float64 { return float64(t.PriceCents) }
	var view listing.View[Treatment]
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case "", "featured":
	case SortPriceLow:
		view.Order = listing.By(price, listing.Asc)
	case SortPriceHigh:
		view.Order = listing.By(price, listing.Desc)
	default:
		return nil, ErrInvalidInput
	}

	items, err := s.treatments.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Apply(items, view), nil
}

// Groomers lista los peluqueros; specialty filtra por texto.
func (s *Service) Groomers(ctx context.Context, specialty string) ([]Groomer, error) {
	items, err := s.groomers.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	view := listing.View[Groomer]{}.Where(
		listing.Contains(specialty, func(g Groomer) []string { return []string{g.Specialty} }),
	)
	return listing.Apply(items, view), nil
}

func (s *Service) treatment(ctx context.Context, id string) (Treatment, error) {
	items, err := s.treatments.Snapshot(ctx)
	if err != nil {
		return Treatment{}, err
	}
	for _, t := range items {
		if t.ID == id {
			return t, nil
		}
	}
	return Treatment{}, ErrInvalidInput
}

func (s *Service) groomer(ctx context.Context, id string) (Groomer, error) {
	items, err := s.groomers.Snapshot(ctx)
	if err != nil {
		return Groomer{}, err
	}
	for _, g := range items {
		if g.ID == id {
			return g, nil
		}
	}
	return Groomer{}, ErrInvalidInput
}

type SlotAvailability struct {
	Slot      string `json:"slot"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// Availability devuelve todos los turnos del día marcando los libres.
// Los turnos ya pasados cuentan como no disponibles.
func (s *Service) Availability(ctx context.Context, groomerID string, day civil.Date) ([]SlotAvailability, error) {
	if !day.IsValid() {
		return nil, ErrInvalidInput
	}
	if _, err := s.groomer(ctx, strings.TrimSpace(groomerID)); err != nil {
		return nil, err
	}

	taken, err := s.repo.ListByGroomerDay(ctx, strings.TrimSpace(groomerID), day)
	if err != nil {
		return nil, err
	}
	busy := make(map[string]bool, len(taken))
	for _, b := range taken {
		if b.Status == BookingBooked {
			busy[b.Slot] = true
		}
	}

	now := s.now().In(s.loc)
	out := make([]SlotAvailability, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		start := Booking{Date: day, Slot: slot}.StartsAt(s.loc)
		out = append(out, SlotAvailability{
			Slot:      slot,
			Label:     SlotLabel(slot),
			Available: !busy[slot] && start.After(now),
		})
	}
	return out, nil
}

type BookInput struct {
	TreatmentID string
	GroomerID   string
	Date        civil.Date
	Slot        string
	PetName     string
	Notes       string
}

func (s *Service) Book(ctx context.Context, userID string, in BookInput) (Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return Booking{}, ErrInvalidInput
	}
	t, err := s.treatment(ctx, strings.TrimSpace(in.TreatmentID))
	if err != nil {
		return Booking{}, err
	}
	g, err := s.groomer(ctx, strings.TrimSpace(in.GroomerID))
	if err != nil {
		return Booking{}, err
	}
	slot, ok := ParseSlot(in.Slot)
	if !ok || !in.Date.IsValid() {
		return Booking{}, ErrInvalidInput
	}

	now := s.now()
	b := Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		TreatmentID: t.ID,
		GroomerID:   g.ID,
		PetName:     strings.TrimSpace(in.PetName),
		Date:        in.Date,
		Slot:        slot,
		PriceCents:  t.PriceCents,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      BookingBooked,
		CreatedAt:   now,
	}
	if !b.StartsAt(s.loc).After(now) {
		return Booking{}, ErrPastDate
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

// MyBookings devuelve las reservas del usuario por fecha y turno.
func (s *Service) MyBookings(ctx context.Context, userID string) ([]Booking, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc := s.loc
	view := listing.View[Booking]{
		Order: listing.By(func(b Booking) float64 { return float64(b.StartsAt(loc).Unix()) }, listing.Asc),
	}
	return listing.Apply(items, view), nil
}

func (s *Service) Cancel(ctx context.Context, id, userID string) (Booking, error) {
	b, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Booking{}, err
	}
	if b.UserID != userID {
		return Booking{}, ErrForbidden
	}
	if b.Status == BookingCancelled {
		return b, nil
	}
	if err := s.repo.UpdateStatus(ctx, b.ID, BookingCancelled); err != nil {
		return Booking{}, err
	}
	b.Status = BookingCancelled
	return b, nil
}
