package grooming

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Treatment es un servicio de peluquería del catálogo.
type Treatment struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	DurationMinutes int    `json:"duration_minutes" yaml:"duration_minutes"`
	PriceCents      int64  `json:"price_cents" yaml:"price_cents"`
	Description     string `json:"description" yaml:"description"`
	Image           string `json:"image,omitempty" yaml:"image"`
}

type Groomer struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Rating    float64 `json:"rating" yaml:"rating"`
	Reviews   int     `json:"reviews" yaml:"reviews"`
	Specialty string  `json:"specialty" yaml:"specialty"`
	Image     string  `json:"image,omitempty" yaml:"image"`
}

// TimeSlots son los turnos diarios, cada hora de 9:00 a 17:00 (HH:MM).
var TimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

// ParseSlot acepta "14:00" o "2:00 PM" y devuelve la forma HH:MM.
func ParseSlot(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range []string{"15:04", "3:04 PM", "03:04 PM"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		slot := t.Format("15:04")
		for _, known := range TimeSlots {
			if known == slot {
				return slot, true
			}
		}
		return "", false
	}
	return "", false
}

// SlotLabel: "14:00" -> "2:00 PM".
func SlotLabel(slot string) string {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return slot
	}
	return t.Format("3:04 PM")
}

type BookingStatus string

const (
	BookingBooked    BookingStatus = "booked"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	TreatmentID string        `json:"service_id"`
	GroomerID   string        `json:"groomer_id"`
	PetName     string        `json:"pet_name,omitempty"`
	Date        civil.Date    `json:"date"`
	Slot        string        `json:"slot"`
	PriceCents  int64         `json:"price_cents"`
	Notes       string        `json:"notes,omitempty"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// StartsAt combina fecha y turno en la zona loc.
func (b Booking) StartsAt(loc *time.Location) time.Time {
	t, _ := time.Parse("15:04", b.Slot)
	return time.Date(b.Date.Year, b.Date.Month, b.Date.Day, t.Hour(), t.Minute(), 0, 0, loc)
}
