package lostfound

import (
	"time"

	"cloud.google.com/go/civil"
)

type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
)

func (k Kind) Valid() bool { return k == KindLost || k == KindFound }

type Status string

const (
	StatusOpen     Status = "open"
	StatusReunited Status = "reunited"
)

// Report es un aviso de mascota perdida o encontrada.
// Name solo aplica a mascotas perdidas; Location es "visto por última vez"
// o "encontrado en" según Kind.
type Report struct {
	ID          string     `json:"id" yaml:"id"`
	Kind        Kind       `json:"kind" yaml:"kind"`
	Name        string     `json:"name,omitempty" yaml:"name"`
	Type        string     `json:"type" yaml:"type"`
	Breed       string     `json:"breed" yaml:"breed"`
	Color       string     `json:"color" yaml:"color"`
	Age         string     `json:"age,omitempty" yaml:"age"`
	Location    string     `json:"location" yaml:"location"`
	Date        civil.Date `json:"date" yaml:"date"`
	Image       string     `json:"image,omitempty" yaml:"image"`
	Description string     `json:"description" yaml:"description"`
	Contact     string     `json:"contact" yaml:"contact"`
	Phone       string     `json:"phone" yaml:"phone"`
	Status      Status     `json:"status" yaml:"status"`
	ReporterID  string     `json:"reporter_id,omitempty" yaml:"-"`
	CreatedAt   time.Time  `json:"created_at" yaml:"-"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty" yaml:"-"`
}
