package training

import (
	"errors"
	"net/http"

	"petcare-hub/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/training", func(tr chi.Router) {
		tr.Get("/articles", articlesHandler(svc))
		tr.Get("/videos", videosHandler(svc))
	})
}

type videoResponse struct {
	Video
	Duration   string `json:"duration"`
	ViewsLabel string `json:"views_label"`
}

// articlesHandler godoc
// @Summary Listar artículos de entrenamiento
// @Tags training
// @Produce json
// @Param q query string false "Texto en título o resumen"
// @Param category query string false "dogs | cats | all"
// @Param difficulty query string false "beginner | intermediate | advanced | all"
// @Success 200 {array} Article
// @Router /training/articles [get]
func articlesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := r.URL.Query()
		items, err := svc.Articles(r.Context(), ArticleQuery{
			Text:       v.Get("q"),
			Category:   v.Get("category"),
			Difficulty: v.Get("difficulty"),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}

func videosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := r.URL.Query()
		items, err := svc.Videos(r.Context(), VideoQuery{
			Text:     v.Get("q"),
			Category: v.Get("category"),
			Sort:     v.Get("sort"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]videoResponse, 0, len(items))
		for _, it := range items {
			out = append(out, videoResponse{Video: it, Duration: it.Duration(), ViewsLabel: it.ViewsLabel()})
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
