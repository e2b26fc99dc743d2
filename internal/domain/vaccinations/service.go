package vaccinations

import (
	"context"
	"errors"
	"strings"
	"time"

	"petcare-hub/internal/domain/pets"
	"petcare-hub/internal/listing"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("vaccination not found")
)

// PetLookup resuelve la mascota verificando que userID sea el dueño.
type PetLookup interface {
	GetOwned(ctx context.Context, petID, userID string) (pets.Pet, error)
}

type Options struct {
	// Location fija el "hoy" calendario. Default UTC.
	Location *time.Location
	// UpcomingDays es la ventana para marcar una dosis como próxima.
	UpcomingDays int
}

type Service struct {
	repo         Repository
	pets         PetLookup
	now          func() time.Time
	loc          *time.Location
	upcomingDays int
}

func NewService(repo Repository, petLookup PetLookup, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	days := opts.UpcomingDays
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	return &Service{
		repo:         repo,
		pets:         petLookup,
		now:          time.Now,
		loc:          loc,
		upcomingDays: days,
	}
}

// Today es la fecha calendario actual en la zona configurada.
func (s *Service) Today() civil.Date {
	return civil.DateOf(s.now().In(s.loc))
}

// Entry calcula el estado de v respecto de hoy.
func (s *Service) Entry(v Vaccination) Entry {
	today := s.Today()
	return Entry{
		Vaccination:  v,
		Status:       StatusOf(v.NextDue, today, s.upcomingDays),
		DaysUntilDue: v.NextDue.DaysSince(today),
	}
}

type RecordInput struct {
	Name           string
	AdministeredOn civil.Date
	Dose           int
	// AgeMonths opcional; si es nil se deriva de la fecha de nacimiento.
	AgeMonths  *int
	TotalDoses int
	Notes      string
}

func (s *Service) Record(ctx context.Context, petID, userID string, in RecordInput) (Entry, error) {
	pet, err := s.pets.GetOwned(ctx, petID, userID)
	if err != nil {
		return Entry{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Entry{}, ErrInvalidInput
	}
	if in.AdministeredOn.IsZero() || s.Today().Before(in.AdministeredOn) {
		return Entry{}, ErrInvalidDate
	}

	var age int
	switch {
	case in.AgeMonths != nil:
		age = *in.AgeMonths
	default:
		m, ok := pet.AgeMonthsAt(in.AdministeredOn)
		if !ok {
			return Entry{}, ErrInvalidAge
		}
		age = m
	}

	next, err := NextDue(in.AdministeredOn, in.Dose, age)
	if err != nil {
		return Entry{}, err
	}

	total := in.TotalDoses
	if total <= 0 {
		total = TotalDosesFor(age)
	}
	if total < in.Dose {
		total = in.Dose
	}

	v := Vaccination{
		ID:             uuid.NewString(),
		PetID:          pet.ID,
		OwnerUserID:    pet.OwnerUserID,
		Name:           name,
		AdministeredOn: in.AdministeredOn,
		Dose:           in.Dose,
		TotalDoses:     total,
		AgeMonths:      age,
		NextDue:        next,
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return Entry{}, err
	}
	return s.Entry(v), nil
}

type ListFilter struct {
	Status string // current|upcoming|overdue|all
	Query  string // nombre de la vacuna
}

// List devuelve las vacunas de la mascota con estado derivado,
// ordenadas por próxima fecha ascendente.
func (s *Service) List(ctx context.Context, petID, userID string, f ListFilter) ([]Entry, error) {
	if _, err := s.pets.GetOwned(ctx, petID, userID); err != nil {
		return nil, err
	}
	if !listing.Disabled(f.Status) && !Status(strings.ToLower(strings.TrimSpace(f.Status))).Valid() {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(items))
	for _, v := range items {
		entries = append(entries, s.Entry(v))
	}

	view := listing.View[Entry]{
		Order: listing.By(func(e Entry) float64 { return float64(e.DaysUntilDue) }, listing.Asc),
	}.Where(
		listing.Equals(f.Status, func(e Entry) string { return string(e.Status) }),
		listing.Contains(f.Query, func(e Entry) []string { return []string{e.Name} }),
	)
	return listing.Apply(entries, view), nil
}

func (s *Service) Delete(ctx context.Context, petID, userID, id string) error {
	if _, err := s.pets.GetOwned(ctx, petID, userID); err != nil {
		return err
	}
	v, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if v.PetID != petID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, v.ID)
}

// Calculate es el calculador puro expuesto sin persistencia.
func (s *Service) Calculate(administered civil.Date, dose, ageMonths int) (Entry, error) {
	next, err := NextDue(administered, dose, ageMonths)
	if err != nil {
		return Entry{}, err
	}
	return s.Entry(Vaccination{
		AdministeredOn: administered,
		Dose:           dose,
		TotalDoses:     TotalDosesFor(ageMonths),
		AgeMonths:      ageMonths,
		NextDue:        next,
	}), nil
}
