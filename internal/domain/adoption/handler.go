package adoption

import (
	"errors"
	"net/http"
	"net/url"

	"petcare-hub/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoption/pets", func(ar chi.Router) {
		ar.Get("/", listHandler(svc))
		ar.Get("/{id}", getHandler(svc))
	})
}

type petResponse struct {
	Pet
	AgeLabel string `json:"age"`
}

func queryFrom(v url.Values) Query {
	return Query{
		Text: v.Get("q"),
		Type: v.Get("type"),
		Age:  v.Get("age"),
		Size: v.Get("size"),
		Sort: v.Get("sort"),
	}
}

// listHandler godoc
// @Summary Listar mascotas en adopción
// @Tags adoption
// @Produce json
// @Param q query string false "Texto en nombre o raza"
// @Param type query string false "dog | cat | all; varios separados por coma (dog,cat)"
// @Param age query string false "1..4 | 5 (5+) | all"
// @Param size query string false "small | medium | large | all"
// @Param sort query string false "featured | age-asc | age-desc"
// @Success 200 {array} petResponse
// @Failure 400 {string} string "invalid input"
// @Router /adoption/pets [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), queryFrom(r.URL.Query()))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, petResponse{Pet: p, AgeLabel: p.AgeLabel()})
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, petResponse{Pet: p, AgeLabel: p.AgeLabel()})
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
