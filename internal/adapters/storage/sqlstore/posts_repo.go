package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"petcare-hub/internal/domain/community"

	sq "github.com/Masterminds/squirrel"
)

var postColumns = []string{
	"id", "author_id", "author_name", "title", "content", "category",
	"likes", "comments", "views", "created_at",
}

type PostsRepo struct {
	s *Store
}

func NewPostsRepo(s *Store) *PostsRepo {
	return &PostsRepo{s: s}
}

func (r *PostsRepo) Create(ctx context.Context, p community.Post) error {
	_, err := exec(ctx, r.s.db, r.s.sb.Insert("community_posts").Columns(postColumns...).Values(
		p.ID,
		p.AuthorID,
		p.AuthorName,
		p.Title,
		p.Content,
		p.Category,
		p.Likes,
		p.Comments,
		p.Views,
		toNanos(p.CreatedAt),
	))
	return err
}

func (r *PostsRepo) GetByID(ctx context.Context, id string) (community.Post, error) {
	return r.get(ctx, r.s.db, id)
}

func (r *PostsRepo) get(ctx context.Context, run runner, id string) (community.Post, error) {
	row, err := queryRow(ctx, run, r.s.sb.Select(postColumns...).From("community_posts").Where(sq.Eq{"id": id}))
	if err != nil {
		return community.Post{}, err
	}
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return community.Post{}, community.ErrNotFound
	}
	return p, err
}

func (r *PostsRepo) List(ctx context.Context) ([]community.Post, error) {
	rows, err := query(ctx, r.s.db, r.s.sb.Select(postColumns...).From("community_posts").
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]community.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostsRepo) IncrementViews(ctx context.Context, id string) (community.Post, error) {
	var out community.Post
	err := r.s.inTx(ctx, func(tx *sql.Tx) error {
		n, err := exec(ctx, tx, r.s.sb.Update("community_posts").
			Set("views", sq.Expr("views + 1")).
			Where(sq.Eq{"id": id}))
		if err != nil {
			return err
		}
		if n == 0 {
			return community.ErrNotFound
		}
		out, err = r.get(ctx, tx, id)
		return err
	})
	return out, err
}

// Like inserta (post, user) en community_post_likes; el PK garantiza un like
// por usuario y solo si la fila es nueva se incrementa el contador.
func (r *PostsRepo) Like(ctx context.Context, id, userID string) (community.Post, bool, error) {
	var (
		out   community.Post
		liked bool
	)
	err := r.s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.get(ctx, tx, id); err != nil {
			return err
		}

		n, err := exec(ctx, tx, r.s.sb.Insert("community_post_likes").
			Columns("post_id", "user_id").
			Values(id, userID).
			Suffix("ON CONFLICT DO NOTHING"))
		if err != nil {
			return err
		}
		if n > 0 {
			liked = true
			if _, err := exec(ctx, tx, r.s.sb.Update("community_posts").
				Set("likes", sq.Expr("likes + 1")).
				Where(sq.Eq{"id": id})); err != nil {
				return err
			}
		}

		out, err = r.get(ctx, tx, id)
		return err
	})
	return out, liked, err
}

func scanPost(sc scanner) (community.Post, error) {
	var (
		p       community.Post
		created int64
	)
	if err := sc.Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorName,
		&p.Title,
		&p.Content,
		&p.Category,
		&p.Likes,
		&p.Comments,
		&p.Views,
		&created,
	); err != nil {
		return community.Post{}, err
	}
	p.CreatedAt = fromNanos(created)
	return p, nil
}
