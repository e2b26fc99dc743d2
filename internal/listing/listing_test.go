package listing

import (
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID       int
	Name     string
	Breed    string
	Category string
	Price    float64
	Seen     time.Time
}

func fixtures() []rec {
	base := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	return []rec{
		{ID: 1, Name: "Max", Breed: "Golden Retriever", Category: "Dog", Price: 49.99, Seen: base},
		{ID: 2, Name: "Luna", Breed: "Persian", Category: "Cat", Price: 34.99, Seen: base.AddDate(0, 0, 1)},
		{ID: 3, Name: "Charlie", Breed: "Beagle", Category: "Dog", Price: 59.99, Seen: base.AddDate(0, 0, 2)},
		{ID: 4, Name: "Bella", Breed: "Siamese", Category: "Cat", Price: 24.99, Seen: base.AddDate(0, 0, 3)},
		{ID: 5, Name: "Rocky", Breed: "German Shepherd", Category: "Dog", Price: 79.99, Seen: base.AddDate(0, 0, 4)},
	}
}

func ids(rs []rec) []int {
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func nameOrBreed(r rec) []string { return []string{r.Name, r.Breed} }
func category(r rec) string      { return r.Category }
func price(r rec) float64        { return r.Price }

func ptr(f float64) *float64 { return &f }

func TestApply_NoActivePredicates_ReturnsInputInOrder(t *testing.T) {
	items := fixtures()
	v := View[rec]{}.Where(
		Contains("", nameOrBreed),
		Equals("all", category),
		Equals("  ALL ", category),
		InRange(Range{}, price),
	)

	got := Apply(items, v)

	if diff := cmp.Diff(items, got); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	v := View[rec]{}.Where(
		Contains("e", nameOrBreed),
		Equals("dog", category),
		InRange(Range{Min: ptr(40)}, price),
	)

	once := Apply(fixtures(), v)
	twice := Apply(once, v)

	require.NotEmpty(t, once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("filtering twice changed result (-once +twice):\n%s", diff)
	}
}

func TestContains_CaseInsensitiveAcrossFields(t *testing.T) {
	got := Filter(fixtures(), Contains("RETRIEVER", nameOrBreed))
	assert.Equal(t, []int{1}, ids(got))

	got = Filter(fixtures(), Contains("lu", nameOrBreed))
	assert.Equal(t, []int{2}, ids(got))
}

func TestEquals_IgnoresCase(t *testing.T) {
	got := Filter(fixtures(), Equals("cat", category))
	assert.Equal(t, []int{2, 4}, ids(got))
}

func TestOneOf(t *testing.T) {
	got := Filter(fixtures(), OneOf([]string{"", "cat"}, func(r rec) string { return r.Category }))
	assert.Equal(t, []int{2, 4}, ids(got))

	assert.Nil(t, OneOf([]string{"all", " "}, category))
}

func TestInRange_InclusiveBounds(t *testing.T) {
	got := Filter(fixtures(), InRange(Range{Min: ptr(34.99), Max: ptr(59.99)}, price))
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestBetween(t *testing.T) {
	from := time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)

	got := Filter(fixtures(), Between(&from, &to, func(r rec) time.Time { return r.Seen }))
	assert.Equal(t, []int{2, 3}, ids(got))
}

func TestOr_DisabledMemberDisablesAll(t *testing.T) {
	isSiamese := func(r rec) bool { return r.Breed == "Siamese" }

	p := Or(Equals("dog", category), isSiamese)
	require.NotNil(t, p)
	assert.Equal(t, []int{1, 3, 4, 5}, ids(Filter(fixtures(), p)))

	assert.Nil(t, Or(Equals("all", category), isSiamese))
	assert.Nil(t, Or[rec]())
}

func TestFilter_EmptyResultIsNonNil(t *testing.T) {
	got := Filter(fixtures(), Contains("zebra", nameOrBreed))
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	items := fixtures()
	before := slices.Clone(items)

	_ = Apply(items, View[rec]{Order: By(price, Desc)}.Where(Equals("dog", category)))

	if diff := cmp.Diff(before, items); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestSorted_AscThenDescIsReversed(t *testing.T) {
	asc := Sorted(fixtures(), By(price, Asc))
	desc := Sorted(fixtures(), By(price, Desc))

	assert.Equal(t, []int{4, 2, 1, 3, 5}, ids(asc))

	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	assert.Equal(t, ids(reversed), ids(desc))
}

func TestSorted_StableOnTies(t *testing.T) {
	items := []rec{
		{ID: 1, Price: 10},
		{ID: 2, Price: 5},
		{ID: 3, Price: 10},
		{ID: 4, Price: 5},
	}

	assert.Equal(t, []int{2, 4, 1, 3}, ids(Sorted(items, By(price, Asc))))
	assert.Equal(t, []int{1, 3, 2, 4}, ids(Sorted(items, By(price, Desc))))
}

func TestSorted_NilKeyKeepsOrder(t *testing.T) {
	got := Sorted(fixtures(), Order[rec]{})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(got))

	assert.NotNil(t, Sorted[rec](nil, By(price, Asc)))
}

func TestLimit(t *testing.T) {
	assert.Len(t, Limit(fixtures(), 2), 2)
	assert.Len(t, Limit(fixtures(), 0), 5)
	assert.Len(t, Limit(fixtures(), 10), 5)
}

func TestDisabled(t *testing.T) {
	assert.True(t, Disabled(""))
	assert.True(t, Disabled("All"))
	assert.False(t, Disabled("dog"))
}
