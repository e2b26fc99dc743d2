package grooming

import (
	"context"

	"cloud.google.com/go/civil"
)

type Repository interface {
	// Create falla con ErrSlotTaken si el groomer ya tiene una reserva
	// activa en la misma fecha y turno. El chequeo es atómico.
	Create(ctx context.Context, b Booking) error
	GetByID(ctx context.Context, id string) (Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	ListByGroomerDay(ctx context.Context, groomerID string, day civil.Date) ([]Booking, error)
	UpdateStatus(ctx context.Context, id string, status BookingStatus) error
}
