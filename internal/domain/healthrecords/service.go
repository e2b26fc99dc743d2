package healthrecords

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"petcare-hub/internal/domain/pets"
	"petcare-hub/internal/listing"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidDate   = errors.New("invalid date range")
	ErrInvalidTime   = errors.New("time must be HH:MM or h:MM AM/PM")
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyPassed = errors.New("appointment already took place")
)

// PetLookup resuelve la mascota verificando que userID sea el dueño.
type PetLookup interface {
	GetOwned(ctx context.Context, petID, userID string) (pets.Pet, error)
}

type Service struct {
	meds  MedicationRepository
	appts AppointmentRepository
	pets  PetLookup
	now   func() time.Time
	loc   *time.Location
}

func NewService(meds MedicationRepository, appts AppointmentRepository, petLookup PetLookup, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		meds:  meds,
		appts: appts,
		pets:  petLookup,
		now:   time.Now,
		loc:   loc,
	}
}

type MedicationInput struct {
	Name      string
	Dosage    string
	Frequency string
	StartDate civil.Date
	EndDate   *civil.Date
	NextDose  *civil.Date
	Notes     string
}

func (s *Service) Prescribe(ctx context.Context, petID, userID string, in MedicationInput) (Medication, error) {
	pet, err := s.pets.GetOwned(ctx, petID, userID)
	if err != nil {
		return Medication{}, err
	}

	name := strings.TrimSpace(in.Name)
	dosage := strings.TrimSpace(in.Dosage)
	freq := strings.TrimSpace(in.Frequency)
	if name == "" || dosage == "" || freq == "" {
		return Medication{}, ErrInvalidInput
	}
	if !in.StartDate.IsValid() {
		return Medication{}, ErrInvalidDate
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return Medication{}, ErrInvalidDate
	}
	if in.NextDose != nil && in.NextDose.Before(in.StartDate) {
		return Medication{}, ErrInvalidDate
	}

	m := Medication{
		ID:          uuid.NewString(),
		PetID:       pet.ID,
		OwnerUserID: pet.OwnerUserID,
		Name:        name,
		Dosage:      dosage,
		Frequency:   freq,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		NextDose:    in.NextDose,
		Status:      MedicationActive,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   s.now(),
	}
	if err := s.meds.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

var epoch = civil.Date{Year: 1970, Month: time.January, Day: 1}

// Medications lista los tratamientos; los que tienen próxima toma más
// cercana van primero y los que no tienen fecha al final.
func (s *Service) Medications(ctx context.Context, petID, userID, status string) ([]Medication, error) {
	if _, err := s.pets.GetOwned(ctx, petID, userID); err != nil {
		return nil, err
	}
	if !listing.Disabled(status) && !MedicationStatus(strings.ToLower(strings.TrimSpace(status))).Valid() {
		return nil, ErrInvalidInput
	}

	items, err := s.meds.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	view := listing.View[Medication]{
		Order: listing.By(func(m Medication) float64 {
			if m.NextDose == nil {
				return math.MaxFloat64
			}
			return float64(m.NextDose.DaysSince(epoch))
		}, listing.Asc),
	}.Where(
		listing.Equals(status, func(m Medication) string { return string(m.Status) }),
	)
	return listing.Apply(items, view), nil
}

func (s *Service) StopMedication(ctx context.Context, petID, userID, id string) (Medication, error) {
	if _, err := s.pets.GetOwned(ctx, petID, userID); err != nil {
		return Medication{}, err
	}
	m, err := s.meds.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Medication{}, err
	}
	if m.PetID != petID {
		return Medication{}, ErrNotFound
	}
	if m.Status == MedicationStopped {
		return m, nil
	}
	if err := s.meds.UpdateStatus(ctx, m.ID, MedicationStopped); err != nil {
		return Medication{}, err
	}
	m.Status = MedicationStopped
	return m, nil
}

type AppointmentInput struct {
	Type     string
	Date     civil.Date
	Time     string
	Vet      string
	Location string
	Notes    string
}

// Schedule registra una cita. Se aceptan fechas pasadas para cargar
// historial; quedan como completed.
func (s *Service) Schedule(ctx context.Context, petID, userID string, in AppointmentInput) (AppointmentEntry, error) {
	pet, err := s.pets.GetOwned(ctx, petID, userID)
	if err != nil {
		return AppointmentEntry{}, err
	}

	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		return AppointmentEntry{}, ErrInvalidInput
	}
	if !in.Date.IsValid() {
		return AppointmentEntry{}, ErrInvalidDate
	}
	clock, ok := ParseClock(in.Time)
	if !ok {
		return AppointmentEntry{}, ErrInvalidTime
	}

	a := Appointment{
		ID:          uuid.NewString(),
		PetID:       pet.ID,
		OwnerUserID: pet.OwnerUserID,
		Type:        kind,
		Date:        in.Date,
		Time:        clock,
		Vet:         strings.TrimSpace(in.Vet),
		Location:    strings.TrimSpace(in.Location),
		State:       AppointmentScheduled,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   s.now(),
	}
	if err := s.appts.Create(ctx, a); err != nil {
		return AppointmentEntry{}, err
	}
	return s.entry(a), nil
}

func (s *Service) entry(a Appointment) AppointmentEntry {
	st := StatusUpcoming
	switch {
	case a.State == AppointmentCancelled:
		st = StatusCancelled
	case a.StartsAt(s.loc).Before(s.now()):
		st = StatusCompleted
	}
	return AppointmentEntry{Appointment: a, Status: st}
}

type AppointmentFilter struct {
	// Upcoming deja solo las citas desde ahora en adelante.
	Upcoming bool
	Status   string // upcoming|completed|cancelled|all
}

// Appointments devuelve las citas ordenadas por fecha y hora ascendente.
func (s *Service) Appointments(ctx context.Context, petID, userID string, f AppointmentFilter) ([]AppointmentEntry, error) {
	if _, err := s.pets.GetOwned(ctx, petID, userID); err != nil {
		return nil, err
	}
	if !listing.Disabled(f.Status) && !AppointmentStatus(strings.ToLower(strings.TrimSpace(f.Status))).Valid() {
		return nil, ErrInvalidInput
	}

	items, err := s.appts.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	entries := make([]AppointmentEntry, 0, len(items))
	for _, a := range items {
		entries = append(entries, s.entry(a))
	}

	startsAt := func(e AppointmentEntry) time.Time { return e.StartsAt(s.loc) }
	view := listing.View[AppointmentEntry]{
		Order: listing.By(func(e AppointmentEntry) float64 { return float64(startsAt(e).Unix()) }, listing.Asc),
	}.Where(
		listing.Equals(f.Status, func(e AppointmentEntry) string { return string(e.Status) }),
	)
	if f.Upcoming {
		now := s.now()
		view = view.Where(
			listing.Between(&now, nil, startsAt),
			func(e AppointmentEntry) bool { return e.Status != StatusCancelled },
		)
	}
	return listing.Apply(entries, view), nil
}

// CancelAppointment cancela una cita futura; cancelar dos veces no falla.
func (s *Service) CancelAppointment(ctx context.Context, petID, userID, id string) (AppointmentEntry, error) {
	if _, err := s.pets.GetOwned(ctx, petID, userID); err != nil {
		return AppointmentEntry{}, err
	}
	a, err := s.appts.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return AppointmentEntry{}, err
	}
	if a.PetID != petID {
		return AppointmentEntry{}, ErrNotFound
	}

	e := s.entry(a)
	switch e.Status {
	case StatusCancelled:
		return e, nil
	case StatusCompleted:
		return AppointmentEntry{}, ErrAlreadyPassed
	}
	if err := s.appts.UpdateState(ctx, a.ID, AppointmentCancelled); err != nil {
		return AppointmentEntry{}, err
	}
	a.State = AppointmentCancelled
	return s.entry(a), nil
}
