package vaccinations

import (
	"context"
	"errors"
	"testing"
	"time"

	"petcare-hub/internal/domain/pets"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePets struct {
	byID map[string]pets.Pet
}

func (f fakePets) GetOwned(ctx context.Context, petID, userID string) (pets.Pet, error) {
	p, ok := f.byID[petID]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	if p.OwnerUserID != userID {
		return pets.Pet{}, pets.ErrForbidden
	}
	return p, nil
}

type testRepo struct {
	byID  map[string]Vaccination
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Vaccination{}}
}

func (r *testRepo) Create(ctx context.Context, v Vaccination) error {
	if _, ok := r.byID[v.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[v.ID] = v
	r.order = append(r.order, v.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Vaccination, error) {
	v, ok := r.byID[id]
	if !ok {
		return Vaccination{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]Vaccination, error) {
	out := make([]Vaccination, 0)
	for _, id := range r.order {
		if v, ok := r.byID[id]; ok && v.PetID == petID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *testRepo) {
	t.Helper()

	birth := day(2025, 1, 10)
	lookup := fakePets{byID: map[string]pets.Pet{
		"puppy": {ID: "puppy", OwnerUserID: "owner-1", Name: "Max", BirthDate: &birth},
		"adult": {ID: "adult", OwnerUserID: "owner-1", Name: "Rocky"},
	}}

	repo := newTestRepo()
	svc := NewService(repo, lookup, Options{UpcomingDays: 30})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_Record_DerivesAgeFromBirthDate(t *testing.T) {
	svc, repo := newTestService(t)

	e, err := svc.Record(context.Background(), "puppy", "owner-1", RecordInput{
		Name:           "DHPP",
		AdministeredOn: day(2025, 5, 20),
		Dose:           2,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, e.AgeMonths)
	assert.Equal(t, day(2025, 6, 10), e.NextDue)
	assert.Equal(t, PrimarySeriesDoses, e.TotalDoses)
	assert.Equal(t, StatusUpcoming, e.Status)
	assert.Equal(t, 9, e.DaysUntilDue)
	assert.Len(t, repo.byID, 1)
}

func TestService_Record_RequiresAgeWhenNoBirthDate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Record(context.Background(), "adult", "owner-1", RecordInput{
		Name:           "Rabies",
		AdministeredOn: day(2025, 5, 1),
		Dose:           1,
	})
	assert.ErrorIs(t, err, ErrInvalidAge)

	age := 60
	e, err := svc.Record(context.Background(), "adult", "owner-1", RecordInput{
		Name:           "Rabies",
		AdministeredOn: day(2025, 5, 1),
		Dose:           1,
		AgeMonths:      &age,
	})
	require.NoError(t, err)
	assert.Equal(t, day(2026, 5, 1), e.NextDue)
	assert.Equal(t, StatusCurrent, e.Status)
	assert.Equal(t, 1, e.TotalDoses)
}

func TestService_Record_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	age := 6

	_, err := svc.Record(context.Background(), "adult", "owner-1", RecordInput{Name: "", AdministeredOn: day(2025, 5, 1), Dose: 1, AgeMonths: &age})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Record(context.Background(), "adult", "owner-1", RecordInput{Name: "Rabies", AdministeredOn: day(2025, 7, 1), Dose: 1, AgeMonths: &age})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Record(context.Background(), "adult", "owner-1", RecordInput{Name: "Rabies", AdministeredOn: day(2025, 5, 1), Dose: 0, AgeMonths: &age})
	assert.ErrorIs(t, err, ErrInvalidDose)

	_, err = svc.Record(context.Background(), "adult", "intruder", RecordInput{Name: "Rabies", AdministeredOn: day(2025, 5, 1), Dose: 1, AgeMonths: &age})
	assert.ErrorIs(t, err, pets.ErrForbidden)

	_, err = svc.Record(context.Background(), "ghost", "owner-1", RecordInput{Name: "Rabies", AdministeredOn: day(2025, 5, 1), Dose: 1, AgeMonths: &age})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestService_List_StatusAndOrder(t *testing.T) {
	svc, repo := newTestService(t)

	seed := []Vaccination{
		{ID: "v1", PetID: "adult", Name: "Rabies", NextDue: day(2026, 3, 15)},
		{ID: "v2", PetID: "adult", Name: "Bordetella", NextDue: day(2024, 12, 5)},
		{ID: "v3", PetID: "adult", Name: "DHPP", NextDue: day(2025, 6, 20)},
		{ID: "v4", PetID: "puppy", Name: "FVRCP", NextDue: day(2025, 1, 20)},
	}
	for _, v := range seed {
		require.NoError(t, repo.Create(context.Background(), v))
	}

	all, err := svc.List(context.Background(), "adult", "owner-1", ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"v2", "v3", "v1"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, []Status{StatusOverdue, StatusUpcoming, StatusCurrent}, []Status{all[0].Status, all[1].Status, all[2].Status})

	overdue, err := svc.List(context.Background(), "adult", "owner-1", ListFilter{Status: "Overdue"})
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "Bordetella", overdue[0].Name)

	byName, err := svc.List(context.Background(), "adult", "owner-1", ListFilter{Query: "rab"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "v1", byName[0].ID)

	_, err = svc.List(context.Background(), "adult", "owner-1", ListFilter{Status: "expired"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete_ChecksPet(t *testing.T) {
	svc, repo := newTestService(t)
	require.NoError(t, repo.Create(context.Background(), Vaccination{ID: "v1", PetID: "puppy", Name: "DHPP"}))

	assert.ErrorIs(t, svc.Delete(context.Background(), "adult", "owner-1", "v1"), ErrNotFound)
	require.NoError(t, svc.Delete(context.Background(), "puppy", "owner-1", "v1"))
	assert.Empty(t, repo.byID)
}

func TestService_Calculate(t *testing.T) {
	svc, _ := newTestService(t)

	e, err := svc.Calculate(day(2025, 5, 1), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 5, 22), e.NextDue)
	assert.Equal(t, StatusOverdue, e.Status)

	_, err = svc.Calculate(day(2025, 5, 1), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestService_Today_UsesConfiguredZone(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	svc := NewService(newTestRepo(), fakePets{}, Options{Location: loc})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC) }

	assert.Equal(t, civil.Date{Year: 2025, Month: time.May, Day: 31}, svc.Today())
}
