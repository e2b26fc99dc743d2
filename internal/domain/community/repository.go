package community

import "context"

type Repository interface {
	Create(ctx context.Context, p Post) error
	GetByID(ctx context.Context, id string) (Post, error)
	List(ctx context.Context) ([]Post, error)

	// IncrementViews suma una vista de forma atómica y devuelve el post actualizado.
	IncrementViews(ctx context.Context, id string) (Post, error)
	// Like registra el like de userID una sola vez. liked=false si ya existía.
	Like(ctx context.Context, id, userID string) (p Post, liked bool, err error)
}
