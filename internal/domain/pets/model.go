package pets

import (
	"time"

	"cloud.google.com/go/civil"
)

// Species define las especies soportadas.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	}
	return false
}

// Pet es el perfil de una mascota del usuario dentro del health tracker.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species
	Breed   string
	Sex     Sex

	BirthDate *civil.Date
	Notes     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgeMonthsAt devuelve la edad en meses cumplidos en la fecha on.
// ok=false si no hay fecha de nacimiento o si on es anterior a ella.
func (p Pet) AgeMonthsAt(on civil.Date) (months int, ok bool) {
	if p.BirthDate == nil || on.Before(*p.BirthDate) {
		return 0, false
	}
	b := *p.BirthDate
	months = (on.Year-b.Year)*12 + int(on.Month) - int(b.Month)
	if on.Day < b.Day {
		months--
	}
	return months, true
}
