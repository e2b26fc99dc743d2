package emergency

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"petcare-hub/internal/listing"
	"petcare-hub/internal/platform/httpjson"
	"petcare-hub/internal/ports/snapshot"

	"github.com/go-chi/chi/v5"
)

var ErrInvalidInput = errors.New("invalid input")

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityUrgent   Severity = "urgent"
)

type Contact struct {
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone" yaml:"phone"`
	Address  string `json:"address" yaml:"address"`
	Hours    string `json:"hours" yaml:"hours"`
	Distance string `json:"distance" yaml:"distance"`
}

type Tip struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Severity    Severity `json:"severity" yaml:"severity"`
}

type Info struct {
	Contacts []Contact `json:"contacts"`
	Tips     []Tip     `json:"tips"`
}

type Service struct {
	contacts snapshot.Source[Contact]
	tips     snapshot.Source[Tip]
}

func NewService(contacts snapshot.Source[Contact], tips snapshot.Source[Tip]) *Service {
	return &Service{contacts: contacts, tips: tips}
}

// Get devuelve contactos y consejos; severity filtra solo los consejos.
func (s *Service) Get(ctx context.Context, severity string) (Info, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(severity)))
	if !listing.Disabled(severity) && sev != SeverityCritical && sev != SeverityUrgent {
		return Info{}, ErrInvalidInput
	}

	contacts, err := s.contacts.Snapshot(ctx)
	if err != nil {
		return Info{}, err
	}
	tips, err := s.tips.Snapshot(ctx)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Contacts: contacts,
		Tips:     listing.Filter(tips, listing.Equals(severity, func(t Tip) string { return string(t.Severity) })),
	}, nil
}

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/emergency", func(w http.ResponseWriter, r *http.Request) {
		info, err := svc.Get(r.Context(), r.URL.Query().Get("severity"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "severity must be critical, urgent or all", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		httpjson.Write(w, http.StatusOK, info)
	})
}
