package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"petcare-hub/internal/domain/grooming"

	"cloud.google.com/go/civil"
	sq "github.com/Masterminds/squirrel"
)

var bookingColumns = []string{
	"id", "user_id", "service_id", "groomer_id", "pet_name",
	"booking_date", "slot", "price_cents", "notes", "status", "created_at",
}

type BookingsRepo struct {
	s *Store
}

func NewBookingsRepo(s *Store) *BookingsRepo {
	return &BookingsRepo{s: s}
}

// Create se apoya en el índice único parcial (groomer, fecha, turno) de
// reservas activas; la violación se traduce a ErrSlotTaken.
func (r *BookingsRepo) Create(ctx context.Context, b grooming.Booking) error {
	_, err := exec(ctx, r.s.db, r.s.sb.Insert("grooming_bookings").Columns(bookingColumns...).Values(
		b.ID,
		b.UserID,
		b.TreatmentID,
		b.GroomerID,
		b.PetName,
		b.Date.String(),
		b.Slot,
		b.PriceCents,
		b.Notes,
		string(b.Status),
		toNanos(b.CreatedAt),
	))
	if isUniqueViolation(err) {
		return grooming.ErrSlotTaken
	}
	return err
}

func (r *BookingsRepo) GetByID(ctx context.Context, id string) (grooming.Booking, error) {
	row, err := queryRow(ctx, r.s.db, r.s.sb.Select(bookingColumns...).From("grooming_bookings").Where(sq.Eq{"id": id}))
	if err != nil {
		return grooming.Booking{}, err
	}
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return grooming.Booking{}, grooming.ErrNotFound
	}
	return b, err
}

func (r *BookingsRepo) ListByUser(ctx context.Context, userID string) ([]grooming.Booking, error) {
	return r.list(ctx, sq.Eq{"user_id": userID})
}

func (r *BookingsRepo) ListByGroomerDay(ctx context.Context, groomerID string, day civil.Date) ([]grooming.Booking, error) {
	return r.list(ctx, sq.Eq{"groomer_id": groomerID, "booking_date": day.String()})
}

func (r *BookingsRepo) UpdateStatus(ctx context.Context, id string, status grooming.BookingStatus) error {
	n, err := exec(ctx, r.s.db, r.s.sb.Update("grooming_bookings").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}))
	if isUniqueViolation(err) {
		// reactivar una reserva cancelada cuyo turno ya se ocupó
		return grooming.ErrSlotTaken
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return grooming.ErrNotFound
	}
	return nil
}

func (r *BookingsRepo) list(ctx context.Context, where sq.Eq) ([]grooming.Booking, error) {
	rows, err := query(ctx, r.s.db, r.s.sb.Select(bookingColumns...).From("grooming_bookings").
		Where(where).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]grooming.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBooking(sc scanner) (grooming.Booking, error) {
	var (
		b       grooming.Booking
		day     string
		status  string
		created int64
	)
	if err := sc.Scan(
		&b.ID,
		&b.UserID,
		&b.TreatmentID,
		&b.GroomerID,
		&b.PetName,
		&day,
		&b.Slot,
		&b.PriceCents,
		&b.Notes,
		&status,
		&created,
	); err != nil {
		return grooming.Booking{}, err
	}

	d, err := parseDate(day)
	if err != nil {
		return grooming.Booking{}, err
	}
	b.Date = d
	b.Status = grooming.BookingStatus(status)
	b.CreatedAt = fromNanos(created)
	return b, nil
}
