// Package seed carga el catálogo estático (adopción, tienda, entrenamiento,
// avisos, peluquería, emergencias) desde YAML. Por defecto usa el catálogo
// embebido; catalog.path permite reemplazarlo sin recompilar.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"petcare-hub/internal/domain/adoption"
	"petcare-hub/internal/domain/emergency"
	"petcare-hub/internal/domain/grooming"
	"petcare-hub/internal/domain/lostfound"
	"petcare-hub/internal/domain/shop"
	"petcare-hub/internal/domain/training"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Catalog struct {
	AdoptionPets      []adoption.Pet       `yaml:"adoption_pets"`
	Products          []shop.Product       `yaml:"products"`
	Articles          []training.Article   `yaml:"articles"`
	Videos            []training.Video     `yaml:"videos"`
	LostFound         []lostfound.Report   `yaml:"lost_found"`
	GroomingServices  []grooming.Treatment `yaml:"grooming_services"`
	Groomers          []grooming.Groomer   `yaml:"groomers"`
	EmergencyContacts []emergency.Contact  `yaml:"emergency_contacts"`
	FirstAidTips      []emergency.Tip      `yaml:"first_aid_tips"`
}

// Default devuelve el catálogo embebido.
func Default() (Catalog, error) {
	return Parse(embedded)
}

// Load lee path; vacío = catálogo embebido.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c *Catalog) normalize() {
	for i := range c.LostFound {
		if c.LostFound[i].Status == "" {
			c.LostFound[i].Status = lostfound.StatusOpen
		}
	}
}

// Validate revisa IDs únicos y valores básicos de cada sección.
func (c Catalog) Validate() error {
	checks := []struct {
		section string
		ids     []string
	}{
		{"adoption_pets", idsOf(c.AdoptionPets, func(p adoption.Pet) string { return p.ID })},
		{"products", idsOf(c.Products, func(p shop.Product) string { return p.ID })},
		{"articles", idsOf(c.Articles, func(a training.Article) string { return a.ID })},
		{"videos", idsOf(c.Videos, func(v training.Video) string { return v.ID })},
		{"lost_found", idsOf(c.LostFound, func(r lostfound.Report) string { return r.ID })},
		{"grooming_services", idsOf(c.GroomingServices, func(t grooming.Treatment) string { return t.ID })},
		{"groomers", idsOf(c.Groomers, func(g grooming.Groomer) string { return g.ID })},
	}
	for _, chk := range checks {
		seen := make(map[string]bool, len(chk.ids))
		for i, id := range chk.ids {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%w: %s[%d]: id required", ErrInvalidCatalog, chk.section, i)
			}
			if seen[id] {
				return fmt.Errorf("%w: %s: duplicate id %q", ErrInvalidCatalog, chk.section, id)
			}
			seen[id] = true
		}
	}

	for _, p := range c.Products {
		if p.PriceCents < 0 {
			return fmt.Errorf("%w: product %s: negative price", ErrInvalidCatalog, p.ID)
		}
	}
	for _, t := range c.GroomingServices {
		if t.PriceCents < 0 || t.DurationMinutes <= 0 {
			return fmt.Errorf("%w: grooming service %s: bad price or duration", ErrInvalidCatalog, t.ID)
		}
	}
	for _, a := range c.Articles {
		if !a.PublishedOn.IsValid() {
			return fmt.Errorf("%w: article %s: invalid published_on", ErrInvalidCatalog, a.ID)
		}
	}
	for _, r := range c.LostFound {
		if !r.Kind.Valid() {
			return fmt.Errorf("%w: report %s: kind must be lost or found", ErrInvalidCatalog, r.ID)
		}
		if !r.Date.IsValid() {
			return fmt.Errorf("%w: report %s: invalid date", ErrInvalidCatalog, r.ID)
		}
	}
	for _, t := range c.FirstAidTips {
		if t.Severity != emergency.SeverityCritical && t.Severity != emergency.SeverityUrgent {
			return fmt.Errorf("%w: tip %q: unknown severity %q", ErrInvalidCatalog, t.Title, t.Severity)
		}
	}
	return nil
}

func idsOf[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}
