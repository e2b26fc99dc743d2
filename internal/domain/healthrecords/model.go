package healthrecords

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

type MedicationStatus string

const (
	MedicationActive  MedicationStatus = "active"
	MedicationStopped MedicationStatus = "stopped"
)

func (s MedicationStatus) Valid() bool {
	return s == MedicationActive || s == MedicationStopped
}

// Medication es un tratamiento indicado a la mascota.
type Medication struct {
	ID          string
	PetID       string
	OwnerUserID string

	Name      string
	Dosage    string // "1 tablet", "5 ml"
	Frequency string // "Monthly", "Twice daily"
	StartDate civil.Date
	EndDate   *civil.Date
	NextDose  *civil.Date

	Status    MedicationStatus
	Notes     string
	CreatedAt time.Time
}

// AppointmentState es lo que se guarda; el estado visible se deriva.
type AppointmentState string

const (
	AppointmentScheduled AppointmentState = "scheduled"
	AppointmentCancelled AppointmentState = "cancelled"
)

// AppointmentStatus es el estado calculado respecto de "ahora".
type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "upcoming"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment es una cita veterinaria.
type Appointment struct {
	ID          string
	PetID       string
	OwnerUserID string

	Type     string // "Annual Checkup", "Dental Cleaning"
	Date     civil.Date
	Time     string // HH:MM
	Vet      string
	Location string

	State     AppointmentState
	Notes     string
	CreatedAt time.Time
}

// StartsAt combina fecha y hora en la zona loc.
func (a Appointment) StartsAt(loc *time.Location) time.Time {
	t, _ := time.Parse("15:04", a.Time)
	return time.Date(a.Date.Year, a.Date.Month, a.Date.Day, t.Hour(), t.Minute(), 0, 0, loc)
}

// AppointmentEntry es una cita con su estado calculado.
type AppointmentEntry struct {
	Appointment
	Status AppointmentStatus
}

// ParseClock acepta "14:30" o "2:30 PM" y devuelve HH:MM.
func ParseClock(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range []string{"15:04", "3:04 PM", "03:04 PM", "3:04PM"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

// ClockLabel: "14:30" -> "2:30 PM".
func ClockLabel(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
