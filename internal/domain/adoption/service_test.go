package adoption

import (
	"context"
	"testing"

	"petcare-hub/internal/ports/snapshot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []Pet{
	{ID: "1", Name: "Max", Type: "Dog", Breed: "Golden Retriever", AgeYears: 2, Size: "Large"},
	{ID: "2", Name: "Luna", Type: "Cat", Breed: "Persian", AgeYears: 1, Size: "Small"},
	{ID: "3", Name: "Charlie", Type: "Dog", Breed: "Beagle", AgeYears: 3, Size: "Medium"},
	{ID: "5", Name: "Rocky", Type: "Dog", Breed: "German Shepherd", AgeYears: 5, Size: "Large"},
	{ID: "9", Name: "Duke", Type: "Dog", Breed: "Boxer", AgeYears: 8, Size: "Large"},
	{ID: "7", Name: "Daisy", Type: "Dog", Breed: "Labrador", AgeYears: 1, Size: "Large"},
}

func ids(items []Pet) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestService_List_Filters(t *testing.T) {
	svc := NewService(snapshot.NewStatic(catalog))
	ctx := context.Background()

	cases := []struct {
		name string
		q    Query
		want []string
	}{
		{"no filters keeps catalog order", Query{Type: "all", Age: "all", Size: "all"}, []string{"1", "2", "3", "5", "9", "7"}},
		{"text matches breed", Query{Text: "SHEP"}, []string{"5"}},
		{"type is case insensitive", Query{Type: "cat"}, []string{"2"}},
		{"several types separated by comma", Query{Type: "cat,dog", Age: "1"}, []string{"2", "7"}},
		{"blank entries in type list are ignored", Query{Type: " ,Cat, "}, []string{"2"}},
		{"exact age", Query{Age: "1"}, []string{"2", "7"}},
		{"five means five and older", Query{Age: "5"}, []string{"5", "9"}},
		{"combined", Query{Type: "dog", Size: "large", Age: "1"}, []string{"7"}},
		{"no match is empty", Query{Text: "zebra"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.List(ctx, tc.q)
			require.NoError(t, err)
			require.NotNil(t, got)
			if diff := cmp.Diff(tc.want, ids(got)); diff != "" {
				t.Fatalf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_List_SortByAge(t *testing.T) {
	svc := NewService(snapshot.NewStatic(catalog))

	asc, err := svc.List(context.Background(), Query{Sort: SortAgeAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "7", "1", "3", "5", "9"}, ids(asc))

	desc, err := svc.List(context.Background(), Query{Sort: SortAgeDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "5", "3", "1", "2", "7"}, ids(desc))
}

func TestService_List_RejectsBadParams(t *testing.T) {
	svc := NewService(snapshot.NewStatic(catalog))

	_, err := svc.List(context.Background(), Query{Age: "old"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), Query{Sort: "name"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Get(t *testing.T) {
	svc := NewService(snapshot.NewStatic(catalog))

	p, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Charlie", p.Name)
	assert.Equal(t, "3 years", p.AgeLabel())

	_, err = svc.Get(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNotFound)
}
