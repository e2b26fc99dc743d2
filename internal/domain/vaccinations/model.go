package vaccinations

import (
	"time"

	"cloud.google.com/go/civil"
)

// Vaccination es una dosis registrada por el dueño de la mascota.
// El estado no se guarda: se deriva al leer (ver StatusOf).
type Vaccination struct {
	ID          string
	PetID       string
	OwnerUserID string

	Name           string
	AdministeredOn civil.Date
	Dose           int
	TotalDoses     int
	AgeMonths      int
	NextDue        civil.Date

	Notes     string
	CreatedAt time.Time
}

// Entry es una vacuna con su estado calculado para "hoy".
type Entry struct {
	Vaccination
	Status       Status
	DaysUntilDue int
}
