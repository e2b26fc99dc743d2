package training

import (
	"context"
	"errors"
	"strings"

	"petcare-hub/internal/listing"
	"petcare-hub/internal/ports/snapshot"
)

var ErrInvalidInput = errors.New("invalid input")

const SortViews = "views"

type ArticleQuery struct {
	Text       string
	Category   string
	Difficulty string
}

type VideoQuery struct {
	Text     string
	Category string
	Sort     string
}

type Service struct {
	articles snapshot.Source[Article]
	videos   snapshot.Source[Video]
}

func NewService(articles snapshot.Source[Article], videos snapshot.Source[Video]) *Service {
	return &Service{articles: articles, videos: videos}
}

// Articles filtra artículos. Los marcados "Both" aparecen en cualquier categoría.
func (s *Service) Articles(ctx context.Context, q ArticleQuery) ([]Article, error) {
	items, err := s.articles.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	category := func(a Article) string { return a.Category }
	view := listing.View[Article]{}.Where(
		listing.Contains(q.Text, func(a Article) []string { return []string{a.Title, a.Excerpt} }),
		listing.Or(
			listing.Equals(q.Category, category),
			listing.Equals(CategoryBoth, category),
		),
		listing.Equals(q.Difficulty, func(a Article) string { return a.Difficulty }),
	)
	return listing.Apply(items, view), nil
}

func (s *Service) Videos(ctx context.Context, q VideoQuery) ([]Video, error) {
	view := listing.View[Video]{}.Where(
		listing.Contains(q.Text, func(v Video) []string { return []string{v.Title} }),
		listing.Equals(q.Category, func(v Video) string { return v.Category }),
	)
	switch strings.ToLower(strings.TrimSpace(q.Sort)) {
	case "":
	case SortViews:
		view.Order = listing.By(func(v Video) float64 { return float64(v.Views) }, listing.Desc)
	default:
		return nil, ErrInvalidInput
	}

	items, err := s.videos.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Apply(items, view), nil
}
