package vaccinations

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestNextDue_Policy(t *testing.T) {
	given := day(2025, 3, 15)

	cases := []struct {
		name string
		dose int
		age  int
		want civil.Date
	}{
		{"puppy first dose", 1, 3, day(2025, 4, 5)},
		{"puppy third dose", 3, 11, day(2025, 4, 5)},
		{"puppy fourth dose switches to annual", 4, 6, day(2026, 3, 15)},
		{"puppy extra dose stays annual", 5, 8, day(2026, 3, 15)},
		{"adult any dose", 1, 24, day(2026, 3, 15)},
		{"exactly twelve months is adult", 2, 12, day(2026, 3, 15)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextDue(given, tc.dose, tc.age)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextDue_CrossesMonthAndYear(t *testing.T) {
	got, err := NextDue(day(2024, 12, 20), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 1, 10), got)
}

func TestNextDue_LeapDayNormalizesToMarchFirst(t *testing.T) {
	got, err := NextDue(day(2024, 2, 29), 1, 36)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 3, 1), got)
}

func TestNextDue_RejectsInvalidInput(t *testing.T) {
	_, err := NextDue(day(2025, 1, 1), 0, 3)
	assert.ErrorIs(t, err, ErrInvalidDose)

	_, err = NextDue(day(2025, 1, 1), -2, 3)
	assert.ErrorIs(t, err, ErrInvalidDose)

	_, err = NextDue(day(2025, 1, 1), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidAge)

	_, err = NextDue(civil.Date{}, 1, 3)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NextDue(day(2025, 2, 30), 1, 3)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestStatusOf(t *testing.T) {
	today := day(2025, 6, 1)

	assert.Equal(t, StatusOverdue, StatusOf(day(2025, 5, 31), today, 30))
	assert.Equal(t, StatusUpcoming, StatusOf(today, today, 30))
	assert.Equal(t, StatusUpcoming, StatusOf(day(2025, 7, 1), today, 30))
	assert.Equal(t, StatusCurrent, StatusOf(day(2025, 7, 2), today, 30))
	assert.Equal(t, StatusCurrent, StatusOf(day(2025, 6, 2), today, 0))
}

func TestTotalDosesFor(t *testing.T) {
	assert.Equal(t, PrimarySeriesDoses, TotalDosesFor(2))
	assert.Equal(t, 1, TotalDosesFor(12))
}
