package lostfound

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"petcare-hub/internal/listing"
	"petcare-hub/internal/ports/snapshot"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("report not found")
	ErrForbidden    = errors.New("forbidden")
)

// epoch es el origen para ordenar por fecha calendario.
var epoch = civil.Date{Year: 1970, Month: time.January, Day: 1}

type Service struct {
	repo   Repository
	seeded snapshot.Source[Report]
	now    func() time.Time
	loc    *time.Location
}

// NewService combina los avisos sembrados del catálogo (solo lectura) con
// los publicados por usuarios. loc fija el "hoy" de los avisos nuevos.
func NewService(repo Repository, seeded snapshot.Source[Report], loc *time.Location) *Service {
	if seeded == nil {
		seeded = snapshot.NewStatic[Report](nil)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:   repo,
		seeded: seeded,
		now:    time.Now,
		loc:    loc,
	}
}

func (s *Service) source() snapshot.Source[Report] {
	return snapshot.Concat(s.seeded, snapshot.Func[Report](s.repo.List))
}

type Query struct {
	Kind string
	// Type admite varios valores separados por coma ("dog,cat").
	Type            string
	Text            string
	IncludeResolved bool
	// Since limita a avisos con fecha >= Since (YYYY-MM-DD).
	Since string
}

// List devuelve los avisos filtrados, más recientes primero.
func (s *Service) List(ctx context.Context, q Query) ([]Report, error) {
	var since *time.Time
	if strings.TrimSpace(q.Since) != "" {
		d, err := civil.ParseDate(strings.TrimSpace(q.Since))
		if err != nil {
			return nil, ErrInvalidInput
		}
		t := d.In(time.UTC)
		since = &t
	}
	if !listing.Disabled(q.Kind) && !Kind(strings.ToLower(strings.TrimSpace(q.Kind))).Valid() {
		return nil, ErrInvalidInput
	}

	var open listing.Predicate[Report]
	if !q.IncludeResolved {
		open = func(r Report) bool { return r.Status != StatusReunited }
	}

	view := listing.View[Report]{
		Order: listing.By(func(r Report) float64 { return float64(r.Date.DaysSince(epoch)) }, listing.Desc),
	}.Where(
		listing.Equals(q.Kind, func(r Report) string { return string(r.Kind) }),
		listing.OneOf(strings.Split(q.Type, ","), func(r Report) string { return r.Type }),
		listing.Contains(q.Text, func(r Report) []string { return []string{r.Name, r.Breed, r.Location} }),
		listing.Between(since, nil, func(r Report) time.Time { return r.Date.In(time.UTC) }),
		open,
	)

	items, err := s.source().Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Apply(items, view), nil
}

func (s *Service) Get(ctx context.Context, id string) (Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrNotFound
	}
	items, err := s.source().Snapshot(ctx)
	if err != nil {
		return Report{}, err
	}
	for _, r := range items {
		if r.ID == id {
			return r, nil
		}
	}
	return Report{}, ErrNotFound
}

type CreateInput struct {
	Kind        string
	Name        string
	Type        string
	Breed       string
	Color       string
	Age         string
	Location    string
	Date        *civil.Date // default: hoy
	Description string
	Contact     string
	Phone       string
}

func (s *Service) Create(ctx context.Context, reporterID string, in CreateInput) (Report, error) {
	if strings.TrimSpace(reporterID) == "" {
		return Report{}, ErrInvalidInput
	}
	kind := Kind(strings.ToLower(strings.TrimSpace(in.Kind)))
	if !kind.Valid() {
		return Report{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if kind == KindLost && name == "" {
		return Report{}, ErrInvalidInput
	}
	for _, req := range []string{in.Type, in.Location, in.Contact, in.Phone} {
		if strings.TrimSpace(req) == "" {
			return Report{}, ErrInvalidInput
		}
	}

	now := s.now()
	today := civil.DateOf(now.In(s.loc))
	day := today
	if in.Date != nil {
		if !in.Date.IsValid() || today.Before(*in.Date) {
			return Report{}, ErrInvalidInput
		}
		day = *in.Date
	}

	r := Report{
		ID:          uuid.NewString(),
		Kind:        kind,
		Name:        name,
		Type:        titleCase(in.Type),
		Breed:       strings.TrimSpace(in.Breed),
		Color:       strings.TrimSpace(in.Color),
		Age:         strings.TrimSpace(in.Age),
		Location:    strings.TrimSpace(in.Location),
		Date:        day,
		Description: strings.TrimSpace(in.Description),
		Contact:     strings.TrimSpace(in.Contact),
		Phone:       strings.TrimSpace(in.Phone),
		Status:      StatusOpen,
		ReporterID:  reporterID,
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Report{}, err
	}
	return r, nil
}

// Resolve marca el aviso como reunido. Solo quien lo publicó.
func (s *Service) Resolve(ctx context.Context, id, userID string) (Report, error) {
	r, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if errors.Is(err, ErrNotFound) {
		// los avisos sembrados existen pero no tienen dueño en este sistema
		if _, gerr := s.Get(ctx, id); gerr == nil {
			return Report{}, ErrForbidden
		}
		return Report{}, ErrNotFound
	}
	if err != nil {
		return Report{}, err
	}
	if r.ReporterID != userID {
		return Report{}, ErrForbidden
	}
	if r.Status == StatusReunited {
		return r, nil
	}

	now := s.now()
	r.Status = StatusReunited
	r.ResolvedAt = &now
	if err := s.repo.Update(ctx, r); err != nil {
		return Report{}, err
	}
	return r, nil
}

// titleCase normaliza "dog" -> "Dog" para que coincida con el catálogo.
func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// ParseBool acepta los valores de checkbox habituales; vacío = false.
func ParseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, ErrInvalidInput
	}
	return b, nil
}
