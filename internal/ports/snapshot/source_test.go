package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ReturnsCopies(t *testing.T) {
	src := NewStatic([]string{"a", "b"})

	first, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, second)
}

func TestStatic_EmptyIsNonNil(t *testing.T) {
	got, err := NewStatic[int](nil).Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConcat(t *testing.T) {
	src := Concat[int](NewStatic([]int{1, 2}), NewStatic([]int{3}))
	got, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	boom := errors.New("boom")
	failing := Concat[int](NewStatic([]int{1}), Func[int](func(context.Context) ([]int, error) { return nil, boom }))
	_, err = failing.Snapshot(context.Background())
	assert.ErrorIs(t, err, boom)
}
