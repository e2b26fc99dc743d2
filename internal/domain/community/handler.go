package community

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"petcare-hub/internal/middleware"
	"petcare-hub/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/community/posts", func(cr chi.Router) {
		cr.Get("/", listHandler(svc))
		cr.Post("/", createHandler(svc))
		cr.Get("/{id}", getHandler(svc))
		cr.Post("/{id}/like", likeHandler(svc))
	})
}

type createRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	AuthorName string `json:"author_name"`
}

type postResponse struct {
	Post
	PostedAgo string `json:"posted_ago"`
}

type likeResponse struct {
	Post
	Liked bool `json:"liked"`
}

func toResponse(p Post, now time.Time) postResponse {
	return postResponse{Post: p, PostedAgo: AgeLabel(p.CreatedAt, now)}
}

// listHandler godoc
// @Summary Listar posts de la comunidad
// @Tags community
// @Produce json
// @Param category query string false "Categoría o all"
// @Param q query string false "Texto en título o contenido"
// @Success 200 {array} postResponse
// @Router /community/posts [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := r.URL.Query()
		items, err := svc.List(r.Context(), Query{Category: v.Get("category"), Text: v.Get("q")})
		if err != nil {
			writeError(w, err)
			return
		}

		now := svc.Now()
		out := make([]postResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p, now))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// createHandler godoc
// @Summary Publicar en la comunidad
// @Tags community
// @Accept json
// @Produce json
// @Param payload body createRequest true "Título y contenido obligatorios"
// @Success 201 {object} postResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /community/posts [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		name := req.AuthorName
		if strings.TrimSpace(name) == "" {
			name = claims.DisplayName
		}

		p, err := svc.Create(r.Context(), claims.UserID, name, CreateInput{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toResponse(p, svc.Now()))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.View(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(p, svc.Now()))
	}
}

func likeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, liked, err := svc.Like(r.Context(), chi.URLParam(r, "id"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, likeResponse{Post: p, Liked: liked})
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
