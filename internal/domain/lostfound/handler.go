package lostfound

import (
	"errors"
	"net/http"
	"strings"

	"petcare-hub/internal/middleware"
	"petcare-hub/internal/platform/httpjson"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/lost-found/reports", func(lr chi.Router) {
		lr.Get("/", listHandler(svc))
		lr.Post("/", createHandler(svc))
		lr.Get("/{id}", getHandler(svc))
		lr.Post("/{id}/resolve", resolveHandler(svc))
	})
}

type createRequest struct {
	Kind        string `json:"kind"` // lost | found
	Name        string `json:"name"`
	Type        string `json:"type"`
	Breed       string `json:"breed"`
	Color       string `json:"color"`
	Age         string `json:"age"`
	Location    string `json:"location"`
	Date        string `json:"date"` // YYYY-MM-DD opcional
	Description string `json:"description"`
	Contact     string `json:"contact"`
	Phone       string `json:"phone"`
}

// listHandler godoc
// @Summary Listar avisos de mascotas perdidas/encontradas
// @Tags lost-found
// @Produce json
// @Param kind query string false "lost | found | all"
// @Param type query string false "dog | cat | all; varios separados por coma (dog,cat)"
// @Param q query string false "Texto en nombre, raza o ubicación"
// @Param since query string false "YYYY-MM-DD"
// @Param include_resolved query bool false "Incluir avisos ya reunidos"
// @Success 200 {array} Report
// @Failure 400 {string} string "invalid input"
// @Router /lost-found/reports [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := r.URL.Query()
		resolved, err := ParseBool(v.Get("include_resolved"))
		if err != nil {
			writeError(w, err)
			return
		}

		items, err := svc.List(r.Context(), Query{
			Kind:            v.Get("kind"),
			Type:            v.Get("type"),
			Text:            v.Get("q"),
			Since:           v.Get("since"),
			IncludeResolved: resolved,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, rep)
	}
}

// createHandler godoc
// @Summary Publicar aviso
// @Tags lost-found
// @Accept json
// @Produce json
// @Param payload body createRequest true "Aviso"
// @Success 201 {object} Report
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /lost-found/reports [post]
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

		var day *civil.Date
		if strings.TrimSpace(req.Date) != "" {
			d, err := civil.ParseDate(strings.TrimSpace(req.Date))
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			day = &d
		}

		rep, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Kind:        req.Kind,
			Name:        req.Name,
			Type:        req.Type,
			Breed:       req.Breed,
			Color:       req.Color,
			Age:         req.Age,
			Location:    req.Location,
			Date:        day,
			Description: req.Description,
			Contact:     req.Contact,
			Phone:       req.Phone,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, rep)
	}
}

func resolveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := svc.Resolve(r.Context(), chi.URLParam(r, "id"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, rep)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
