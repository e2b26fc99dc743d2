package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"petcare-hub/internal/domain/adoption"
	"petcare-hub/internal/domain/lostfound"
	"petcare-hub/internal/domain/shop"
	"petcare-hub/internal/domain/training"
	"petcare-hub/internal/ports/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReports struct {
	err error
}

func (s stubReports) List(ctx context.Context, q lostfound.Query) ([]lostfound.Report, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []lostfound.Report{{ID: "lost-1", Name: "Buddy", Breed: "Labrador Retriever"}}, nil
}

func newTestService(reports ReportLister) *Service {
	pets := make([]adoption.Pet, 0, 8)
	for i := 0; i < 8; i++ {
		pets = append(pets, adoption.Pet{ID: fmt.Sprint(i), Name: fmt.Sprintf("Lab %d", i), Breed: "Labrador"})
	}
	return NewService(
		adoption.NewService(snapshot.NewStatic(pets)),
		shop.NewService(snapshot.NewStatic([]shop.Product{{ID: "1", Name: "Labrador Harness"}, {ID: "2", Name: "Cat Tree"}})),
		training.NewService(snapshot.NewStatic([]training.Article{{ID: "1", Title: "Leash Training", Category: "Dogs"}}), snapshot.NewStatic[training.Video](nil)),
		reports,
	)
}

func TestService_Search_LimitsEachSection(t *testing.T) {
	svc := newTestService(stubReports{})

	res, err := svc.Search(context.Background(), "labrador")
	require.NoError(t, err)
	assert.Len(t, res.Adoption, MaxPerSection)
	assert.Len(t, res.Products, 1)
	assert.Empty(t, res.Articles)
	assert.NotNil(t, res.Articles)
	assert.Len(t, res.Reports, 1)
}

func TestService_Search_Errors(t *testing.T) {
	_, err := newTestService(stubReports{}).Search(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	boom := errors.New("store down")
	_, err = newTestService(stubReports{err: boom}).Search(context.Background(), "lab")
	assert.ErrorIs(t, err, boom)
}
