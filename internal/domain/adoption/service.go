package adoption

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"petcare-hub/internal/listing"
	"petcare-hub/internal/ports/snapshot"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("adoption pet not found")
)

// SeniorAge es la opción "5+ years" del filtro de edad.
const SeniorAge = 5

const (
	SortAgeAsc  = "age-asc"
	SortAgeDesc = "age-desc"
)

// Query es el estado del filtro de la página de adopción.
type Query struct {
	Text string
	Type string // uno o varios separados por coma
	Age  string // "all" | "1".."4" | "5" (5+)
	Size string
	Sort string
}

func (q Query) view() (listing.View[Pet], error) {
	ageRange, err := parseAge(q.Age)
	if err != nil {
		return listing.View[Pet]{}, err
	}

	v := listing.View[Pet]{}.Where(
		listing.Contains(q.Text, func(p Pet) []string { return []string{p.Name, p.Breed} }),
		listing.OneOf(strings.Split(q.Type, ","), func(p Pet) string { return p.Type }),
		listing.InRange(ageRange, func(p Pet) float64 { return float64(p.AgeYears) }),
		listing.Equals(q.Size, func(p Pet) string { return p.Size }),
	)

	age := func(p Pet) float64 { return float64(p.AgeYears) }
	switch strings.ToLower(strings.TrimSpace(q.Sort)) {
	case "", "featured":
	case SortAgeAsc:
		v.Order = listing.By(age, listing.Asc)
	case SortAgeDesc:
		v.Order = listing.By(age, listing.Desc)
	default:
		return listing.View[Pet]{}, ErrInvalidInput
	}
	return v, nil
}

func parseAge(s string) (listing.Range, error) {
	if listing.Disabled(s) {
		return listing.Range{}, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "+"))
	if err != nil || n < 0 {
		return listing.Range{}, ErrInvalidInput
	}
	lo := float64(n)
	if n >= SeniorAge {
		return listing.Range{Min: &lo}, nil
	}
	return listing.Range{Min: &lo, Max: &lo}, nil
}

type Service struct {
	src snapshot.Source[Pet]
}

func NewService(src snapshot.Source[Pet]) *Service {
	return &Service{src: src}
}

func (s *Service) List(ctx context.Context, q Query) ([]Pet, error) {
	view, err := q.view()
	if err != nil {
		return nil, err
	}
	items, err := s.src.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Apply(items, view), nil
}

func (s *Service) Get(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	items, err := s.src.Snapshot(ctx)
	if err != nil {
		return Pet{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}
