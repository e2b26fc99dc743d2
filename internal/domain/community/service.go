package community

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"petcare-hub/internal/listing"
	"petcare-hub/internal/ports/snapshot"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("post not found")
)

const (
	maxTitleLen   = 200
	maxContentLen = 10000
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Now expone el reloj del servicio para calcular etiquetas relativas.
func (s *Service) Now() time.Time { return s.now() }

type Query struct {
	Category string
	Text     string
}

// List devuelve los posts más recientes primero.
func (s *Service) List(ctx context.Context, q Query) ([]Post, error) {
	var src snapshot.Source[Post] = snapshot.Func[Post](s.repo.List)
	items, err := src.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := listing.View[Post]{
		Order: listing.By(func(p Post) float64 { return float64(p.CreatedAt.UnixNano()) }, listing.Desc),
	}.Where(
		listing.Equals(q.Category, func(p Post) string { return p.Category }),
		listing.Contains(q.Text, func(p Post) []string { return []string{p.Title, p.Content} }),
	)
	return listing.Apply(items, view), nil
}

type CreateInput struct {
	Title    string
	Content  string
	Category string
}

func (s *Service) Create(ctx context.Context, authorID, authorName string, in CreateInput) (Post, error) {
	if strings.TrimSpace(authorID) == "" {
		return Post{}, ErrInvalidInput
	}
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" || len(title) > maxTitleLen || len(content) > maxContentLen {
		return Post{}, ErrInvalidInput
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}
	i := slices.IndexFunc(Categories, func(c string) bool { return strings.EqualFold(c, category) })
	if i < 0 {
		return Post{}, ErrInvalidInput
	}

	name := strings.TrimSpace(authorName)
	if name == "" {
		name = "Anonymous"
	}

	p := Post{
		ID:         uuid.NewString(),
		AuthorID:   authorID,
		AuthorName: name,
		Title:      title,
		Content:    content,
		Category:   Categories[i],
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

// View devuelve el post y cuenta una vista.
func (s *Service) View(ctx context.Context, id string) (Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Post{}, ErrNotFound
	}
	return s.repo.IncrementViews(ctx, id)
}

func (s *Service) Like(ctx context.Context, id, userID string) (Post, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return Post{}, false, ErrInvalidInput
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Post{}, false, ErrNotFound
	}
	return s.repo.Like(ctx, id, userID)
}
