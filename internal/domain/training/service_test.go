package training

import (
	"context"
	"testing"

	"petcare-hub/internal/ports/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	articles := []Article{
		{ID: "1", Title: "Basic Obedience Training for Puppies", Category: "Dogs", Difficulty: "Beginner", Excerpt: "sit, stay, and come"},
		{ID: "2", Title: "Litter Box Training for Kittens", Category: "Cats", Difficulty: "Beginner"},
		{ID: "3", Title: "Advanced Agility Training", Category: "Dogs", Difficulty: "Advanced"},
		{ID: "6", Title: "Socializing Your Pet", Category: "Both", Difficulty: "Intermediate"},
	}
	videos := []Video{
		{ID: "1", Title: "Teaching Your Dog to Sit", Category: "Dogs", DurationSeconds: 225, Views: 125_000},
		{ID: "2", Title: "Cat Clicker Training Basics", Category: "Cats", DurationSeconds: 320, Views: 89_000},
		{ID: "4", Title: "Recall Training for Dogs", Category: "Dogs", DurationSeconds: 390, Views: 203_000},
	}
	return NewService(snapshot.NewStatic(articles), snapshot.NewStatic(videos))
}

func articleIDs(items []Article) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestService_Articles_BothMatchesAnyCategory(t *testing.T) {
	svc := newTestService()

	cats, err := svc.Articles(context.Background(), ArticleQuery{Category: "cats"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "6"}, articleIDs(cats))

	all, err := svc.Articles(context.Background(), ArticleQuery{Category: "all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "6"}, articleIDs(all))

	beginnerDogs, err := svc.Articles(context.Background(), ArticleQuery{Category: "dogs", Difficulty: "beginner"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, articleIDs(beginnerDogs))

	byExcerpt, err := svc.Articles(context.Background(), ArticleQuery{Text: "STAY"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, articleIDs(byExcerpt))
}

func TestService_Videos(t *testing.T) {
	svc := newTestService()

	got, err := svc.Videos(context.Background(), VideoQuery{Category: "dogs", Sort: SortViews})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "4", got[0].ID)
	assert.Equal(t, "6:30", got[0].Duration())
	assert.Equal(t, "203K", got[0].ViewsLabel())

	_, err = svc.Videos(context.Background(), VideoQuery{Sort: "length"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
