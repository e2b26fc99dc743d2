package lostfound

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
	byID  map[string]Report
	order []string
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Report{}} }

func (r *testRepo) Create(ctx context.Context, rep Report) error {
	r.byID[rep.ID] = rep
	r.order = append(r.order, rep.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, rep Report) error {
	if _, ok := r.byID[rep.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Report, error) {
	rep, ok := r.byID[id]
	if !ok {
		return Report{}, ErrNotFound
	}
	return rep, nil
}

func (r *testRepo) List(ctx context.Context) ([]Report, error) {
	out := make([]Report, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func d(y int, m time.Month, day int) civil.Date { return civil.Date{Year: y, Month: m, Day: day} }

var seeded = []Report{
	{ID: "lost-1", Kind: KindLost, Name: "Buddy", Type: "Dog", Breed: "Labrador Retriever", Location: "Downtown Park, Main Street", Date: d(2025, 1, 28), Status: StatusOpen},
	{ID: "lost-2", Kind: KindLost, Name: "Whiskers", Type: "Cat", Breed: "Tabby", Location: "Oak Avenue", Date: d(2025, 1, 27), Status: StatusOpen},
	{ID: "found-1", Kind: KindFound, Type: "Dog", Breed: "Mixed Breed", Location: "Central Park", Date: d(2025, 1, 29), Status: StatusOpen},
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, snapshot.NewStatic(seeded), time.UTC)
	svc.now = func() time.Time { return time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func reportIDs(items []Report) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.ID)
	}
	return out
}

func TestService_List_NewestFirstAndFilters(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	all, err := svc.List(ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"found-1", "lost-1", "lost-2"}, reportIDs(all))

	lost, err := svc.List(ctx, Query{Kind: "lost", Type: "cat"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lost-2"}, reportIDs(lost))

	byLocation, err := svc.List(ctx, Query{Text: "park"})
	require.NoError(t, err)
	assert.Equal(t, []string{"found-1", "lost-1"}, reportIDs(byLocation))

	recent, err := svc.List(ctx, Query{Since: "2025-01-28"})
	require.NoError(t, err)
	assert.Equal(t, []string{"found-1", "lost-1"}, reportIDs(recent))

	_, err = svc.List(ctx, Query{Kind: "stolen"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_MultipleTypes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	both, err := svc.List(ctx, Query{Type: "cat, dog"})
	require.NoError(t, err)
	assert.Equal(t, []string{"found-1", "lost-1", "lost-2"}, reportIDs(both))

	cats, err := svc.List(ctx, Query{Type: "Cat,"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lost-2"}, reportIDs(cats))

	anything, err := svc.List(ctx, Query{Type: "all"})
	require.NoError(t, err)
	assert.Len(t, anything, 3)
}

func TestService_CreateAndResolve(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rep, err := svc.Create(ctx, "user-1", CreateInput{
		Kind: "lost", Name: "Nala", Type: "cat", Location: "Elm Street", Contact: "Ana", Phone: "555",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cat", rep.Type)
	assert.Equal(t, d(2025, 2, 1), rep.Date)
	assert.Equal(t, StatusOpen, rep.Status)

	all, err := svc.List(ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, rep.ID, all[0].ID)

	_, err = svc.Resolve(ctx, rep.ID, "user-2")
	assert.ErrorIs(t, err, ErrForbidden)

	resolved, err := svc.Resolve(ctx, rep.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusReunited, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)

	open, err := svc.List(ctx, Query{})
	require.NoError(t, err)
	assert.NotContains(t, reportIDs(open), rep.ID)

	withResolved, err := svc.List(ctx, Query{IncludeResolved: true})
	require.NoError(t, err)
	assert.Contains(t, reportIDs(withResolved), rep.ID)
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	base := CreateInput{Kind: "found", Type: "Dog", Location: "Park", Contact: "Ana", Phone: "555"}

	_, err := svc.Create(ctx, "user-1", base)
	require.NoError(t, err)

	lostNoName := base
	lostNoName.Kind = "lost"
	_, err = svc.Create(ctx, "user-1", lostNoName)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noPhone := base
	noPhone.Phone = " "
	_, err = svc.Create(ctx, "user-1", noPhone)
	assert.ErrorIs(t, err, ErrInvalidInput)

	future := base
	tomorrow := d(2025, 2, 2)
	future.Date = &tomorrow
	_, err = svc.Create(ctx, "user-1", future)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Resolve_SeededIsForbidden(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Resolve(context.Background(), "lost-1", "user-1")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Resolve(context.Background(), "nope", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_DefaultDateUsesConfiguredZone(t *testing.T) {
	repo := newTestRepo()
	// 01:00 UTC del 1/2 sigue siendo 31/1 en UTC-3
	svc := NewService(repo, nil, time.FixedZone("UTC-3", -3*3600))
	svc.now = func() time.Time { return time.Date(2025, 2, 1, 1, 0, 0, 0, time.UTC) }

	rep, err := svc.Create(context.Background(), "user-1", CreateInput{
		Kind: "found", Type: "dog", Location: "Park", Contact: "Ana", Phone: "555",
	})
	require.NoError(t, err)
	assert.Equal(t, d(2025, 1, 31), rep.Date)

	tomorrowLocal := d(2025, 2, 1)
	_, err = svc.Create(context.Background(), "user-1", CreateInput{
		Kind: "found", Type: "dog", Location: "Park", Contact: "Ana", Phone: "555", Date: &tomorrowLocal,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"dog":   "Dog",
		" CAT ": "Cat",
		"érizo": "Érizo",
		"ñandú": "Ñandú",
		"":      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, titleCase(in), in)
	}
}
