package memory

import (
	"context"
	"errors"
	"sync"

	"petcare-hub/internal/domain/community"
)

type postRepo struct {
	mu    sync.RWMutex
	byID  map[string]community.Post
	likes map[string]map[string]struct{} // postID -> userIDs
	order []string
}

func NewPostRepo() community.Repository {
	return &postRepo{
		byID:  make(map[string]community.Post),
		likes: make(map[string]map[string]struct{}),
	}
}

func (r *postRepo) Create(ctx context.Context, p community.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("post id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("post already exists")
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id string) (community.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return community.Post{}, community.ErrNotFound
	}
	return p, nil
}

func (r *postRepo) List(ctx context.Context) ([]community.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]community.Post, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *postRepo) IncrementViews(ctx context.Context, id string) (community.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return community.Post{}, community.ErrNotFound
	}
	p.Views++
	r.byID[id] = p
	return p, nil
}

func (r *postRepo) Like(ctx context.Context, id, userID string) (community.Post, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return community.Post{}, false, community.ErrNotFound
	}
	users := r.likes[id]
	if users == nil {
		users = make(map[string]struct{})
		r.likes[id] = users
	}
	if _, dup := users[userID]; dup {
		return p, false, nil
	}
	users[userID] = struct{}{}
	p.Likes++
	r.byID[id] = p
	return p, true, nil
}
