package shop

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"petcare-hub/internal/listing"
	"petcare-hub/internal/ports/snapshot"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// Query es el estado de filtros de la tienda. Los precios vienen en dólares.
type Query struct {
	Text     string
	Category string
	Sort     string
	MinPrice string
	MaxPrice string
}

func (q Query) view() (listing.View[Product], error) {
	lo, err := parseDollars(q.MinPrice)
	if err != nil {
		return listing.View[Product]{}, err
	}
	hi, err := parseDollars(q.MaxPrice)
	if err != nil {
		return listing.View[Product]{}, err
	}
	if lo != nil && hi != nil && *lo > *hi {
		return listing.View[Product]{}, ErrInvalidInput
	}

	v := listing.View[Product]{}.Where(
		listing.Contains(q.Text, func(p Product) []string { return []string{p.Name, p.Description} }),
		listing.Equals(q.Category, func(p Product) string { return p.Category }),
		listing.InRange(listing.Range{Min: lo, Max: hi}, func(p Product) float64 { return float64(p.PriceCents) }),
	)

	switch strings.ToLower(strings.TrimSpace(q.Sort)) {
	case "", SortFeatured:
	case SortPriceLow:
		v.Order = listing.By(func(p Product) float64 { return float64(p.PriceCents) }, listing.Asc)
	case SortPriceHigh:
		v.Order = listing.By(func(p Product) float64 { return float64(p.PriceCents) }, listing.Desc)
	case SortRating:
		v.Order = listing.By(func(p Product) float64 { return p.Rating }, listing.Desc)
	default:
		return listing.View[Product]{}, ErrInvalidInput
	}
	return v, nil
}

// parseDollars convierte "12.5" a centavos; vacío = sin límite.
func parseDollars(s string) (*float64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return nil, ErrInvalidInput
	}
	cents := math.Round(f * 100)
	return &cents, nil
}

type Service struct {
	src snapshot.Source[Product]
}

func NewService(src snapshot.Source[Product]) *Service {
	return &Service{src: src}
}

func (s *Service) List(ctx context.Context, q Query) ([]Product, error) {
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

// Categories devuelve las categorías en orden de aparición.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	items, err := s.src.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range items {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	items, err := s.src.Snapshot(ctx)
	if err != nil {
		return Product{}, err
	}
	id = strings.TrimSpace(id)
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
