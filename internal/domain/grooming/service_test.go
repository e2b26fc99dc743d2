package grooming

import (
	"context"
	"testing"
	"time"

	"petcare-hub/internal/ports/snapshot"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Booking
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Booking{}} }

func (r *testRepo) Create(ctx context.Context, b Booking) error {
	for _, existing := range r.byID {
		if existing.Status == BookingBooked && existing.GroomerID == b.GroomerID && existing.Date == b.Date && existing.Slot == b.Slot {
			return ErrSlotTaken
		}
	}
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return Booking{}, ErrNotFound
	}
	return b, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	out := make([]Booking, 0)
	for _, b := range r.byID {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *testRepo) ListByGroomerDay(ctx context.Context, groomerID string, day civil.Date) ([]Booking, error) {
	out := make([]Booking, 0)
	for _, b := range r.byID {
		if b.GroomerID == groomerID && b.Date == day {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *testRepo) UpdateStatus(ctx context.Context, id string, status BookingStatus) error {
	b, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	r.byID[id] = b
	return nil
}

func newTestService() *Service {
	treatments := []Treatment{
		{ID: "1", Name: "Basic Bath & Brush", DurationMinutes: 60, PriceCents: 4500},
		{ID: "2", Name: "Full Grooming Package", DurationMinutes: 120, PriceCents: 8500},
		{ID: "4", Name: "Nail Trim & Paw Care", DurationMinutes: 30, PriceCents: 2500},
	}
	groomers := []Groomer{
		{ID: "1", Name: "Sarah Johnson", Specialty: "Dogs & Cats"},
		{ID: "3", Name: "Emily Rodriguez", Specialty: "Cats"},
	}
	svc := NewService(newTestRepo(), snapshot.NewStatic(treatments), snapshot.NewStatic(groomers), time.UTC)
	svc.now = func() time.Time { return time.Date(2025, 5, 10, 11, 30, 0, 0, time.UTC) }
	return svc
}

func TestParseSlot(t *testing.T) {
	for in, want := range map[string]string{"09:00": "09:00", "9:00 am": "09:00", "2:00 PM": "14:00", "17:00": "17:00"} {
		got, ok := ParseSlot(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	for _, bad := range []string{"8:00 AM", "14:30", "noon", ""} {
		_, ok := ParseSlot(bad)
		assert.False(t, ok, bad)
	}
	assert.Equal(t, "12:00 PM", SlotLabel("12:00"))
}

func TestService_Treatments_Sort(t *testing.T) {
	svc := newTestService()

	low, err := svc.Treatments(context.Background(), SortPriceLow)
	require.NoError(t, err)
	assert.Equal(t, "4", low[0].ID)

	high, err := svc.Treatments(context.Background(), SortPriceHigh)
	require.NoError(t, err)
	assert.Equal(t, "2", high[0].ID)

	_, err = svc.Treatments(context.Background(), "duration")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Book_ConflictAndCancel(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	day := civil.Date{Year: 2025, Month: time.May, Day: 12}

	b, err := svc.Book(ctx, "u1", BookInput{TreatmentID: "2", GroomerID: "1", Date: day, Slot: "10:00 AM"})
	require.NoError(t, err)
	assert.Equal(t, "10:00", b.Slot)
	assert.Equal(t, int64(8500), b.PriceCents)

	_, err = svc.Book(ctx, "u2", BookInput{TreatmentID: "1", GroomerID: "1", Date: day, Slot: "10:00"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// otro groomer, mismo turno: ok
	_, err = svc.Book(ctx, "u2", BookInput{TreatmentID: "1", GroomerID: "3", Date: day, Slot: "10:00"})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, "u2")
	assert.ErrorIs(t, err, ErrForbidden)

	cancelled, err := svc.Cancel(ctx, b.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, BookingCancelled, cancelled.Status)

	_, err = svc.Book(ctx, "u2", BookInput{TreatmentID: "1", GroomerID: "1", Date: day, Slot: "10:00"})
	require.NoError(t, err)
}

func TestService_Book_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	today := civil.Date{Year: 2025, Month: time.May, Day: 10}

	_, err := svc.Book(ctx, "u1", BookInput{TreatmentID: "99", GroomerID: "1", Date: today.AddDays(1), Slot: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Book(ctx, "u1", BookInput{TreatmentID: "1", GroomerID: "99", Date: today.AddDays(1), Slot: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Book(ctx, "u1", BookInput{TreatmentID: "1", GroomerID: "1", Date: today.AddDays(1), Slot: "7:00 PM"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Book(ctx, "u1", BookInput{TreatmentID: "1", GroomerID: "1", Date: today.AddDays(-1), Slot: "10:00"})
	assert.ErrorIs(t, err, ErrPastDate)

	// hoy 11:30: el turno de las 11 ya pasó
	_, err = svc.Book(ctx, "u1", BookInput{TreatmentID: "1", GroomerID: "1", Date: today, Slot: "11:00"})
	assert.ErrorIs(t, err, ErrPastDate)

	_, err = svc.Book(ctx, "u1", BookInput{TreatmentID: "1", GroomerID: "1", Date: today, Slot: "12:00"})
	require.NoError(t, err)
}

func TestService_Availability(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	today := civil.Date{Year: 2025, Month: time.May, Day: 10}

	_, err := svc.Book(ctx, "u1", BookInput{TreatmentID: "1", GroomerID: "1", Date: today, Slot: "14:00"})
	require.NoError(t, err)

	slots, err := svc.Availability(ctx, "1", today)
	require.NoError(t, err)
	require.Len(t, slots, len(TimeSlots))

	free := map[string]bool{}
	for _, s := range slots {
		free[s.Slot] = s.Available
	}
	assert.False(t, free["09:00"])
	assert.False(t, free["11:00"])
	assert.True(t, free["12:00"])
	assert.False(t, free["14:00"])
	assert.True(t, free["17:00"])

	_, err = svc.Availability(ctx, "99", today)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_MyBookings_Ordered(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	day := civil.Date{Year: 2025, Month: time.May, Day: 20}

	late, err := svc.Book(ctx, "u1", BookInput{TreatmentID: "1", GroomerID: "1", Date: day, Slot: "16:00"})
	require.NoError(t, err)
	early, err := svc.Book(ctx, "u1", BookInput{TreatmentID: "1", GroomerID: "1", Date: day, Slot: "09:00"})
	require.NoError(t, err)

	got, err := svc.MyBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}
