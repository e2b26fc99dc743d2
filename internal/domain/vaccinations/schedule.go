package vaccinations

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
)

const (
	// PrimarySeriesDoses es la cantidad de dosis de la serie inicial de cachorros/gatitos.
	PrimarySeriesDoses = 4
	// PrimarySeriesIntervalDays separa dos dosis de la serie inicial.
	PrimarySeriesIntervalDays = 21
	// AdultAgeMonths marca el paso a refuerzo anual.
	AdultAgeMonths = 12
	// DefaultUpcomingDays es la ventana en la que una dosis se considera próxima.
	DefaultUpcomingDays = 30
)

var (
	ErrInvalidDose = errors.New("invalid dose number")
	ErrInvalidAge  = errors.New("invalid age")
	ErrInvalidDate = errors.New("invalid administered date")
)

// NextDue calcula la próxima fecha de vacunación.
//
//	age < 12 meses y dosis < 4  -> administrada + 21 días
//	age < 12 meses y dosis >= 4 -> administrada + 1 año
//	age >= 12 meses             -> administrada + 1 año
func NextDue(administered civil.Date, dose, ageMonths int) (civil.Date, error) {
	if administered.IsZero() || !administered.IsValid() {
		return civil.Date{}, ErrInvalidDate
	}
	if dose <= 0 {
		return civil.Date{}, ErrInvalidDose
	}
	if ageMonths <= 0 {
		return civil.Date{}, ErrInvalidAge
	}

	if InPrimarySeries(dose, ageMonths) {
		return administered.AddDays(PrimarySeriesIntervalDays), nil
	}
	return addYear(administered), nil
}

// InPrimarySeries reporta si la dosis todavía pertenece a la serie inicial.
func InPrimarySeries(dose, ageMonths int) bool {
	return ageMonths < AdultAgeMonths && dose < PrimarySeriesDoses
}

// TotalDosesFor es el total esperado de dosis del esquema que corresponde a la edad.
func TotalDosesFor(ageMonths int) int {
	if ageMonths < AdultAgeMonths {
		return PrimarySeriesDoses
	}
	return 1
}

// 29 de febrero + 1 año cae en 1 de marzo.
func addYear(d civil.Date) civil.Date {
	return civil.DateOf(d.In(time.UTC).AddDate(1, 0, 0))
}

type Status string

const (
	StatusCurrent  Status = "current"
	StatusUpcoming Status = "upcoming"
	StatusOverdue  Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCurrent, StatusUpcoming, StatusOverdue:
		return true
	}
	return false
}

// StatusOf deriva el estado comparando nextDue con today:
// vencida si ya pasó, próxima si cae dentro de upcomingDays, vigente si no.
func StatusOf(nextDue, today civil.Date, upcomingDays int) Status {
	if nextDue.Before(today) {
		return StatusOverdue
	}
	if upcomingDays > 0 && nextDue.DaysSince(today) <= upcomingDays {
		return StatusUpcoming
	}
	return StatusCurrent
}
