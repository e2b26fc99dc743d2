package vaccinations

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"petcare-hub/internal/domain/pets"
	"petcare-hub/internal/middleware"
	"petcare-hub/internal/platform/httpjson"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/vaccinations", func(vr chi.Router) {
		vr.Post("/", recordHandler(svc))
		vr.Get("/", listHandler(svc))
		vr.Delete("/{vaccinationID}", deleteHandler(svc))
	})

	// Calculadora sin persistencia (no requiere auth)
	r.Get("/vaccinations/next-due", nextDueHandler(svc))
}

// recordRequest registra una dosis aplicada.
type recordRequest struct {
	Name           string `json:"name"`
	AdministeredOn string `json:"administered_on"` // YYYY-MM-DD
	Dose           int    `json:"dose"`
	AgeMonths      *int   `json:"age_months"`  // opcional si la mascota tiene birth_date
	TotalDoses     int    `json:"total_doses"` // opcional
	Notes          string `json:"notes"`
}

// vaccinationResponse es una vacuna con su estado derivado.
type vaccinationResponse struct {
	ID             string     `json:"id,omitempty"`
	PetID          string     `json:"pet_id,omitempty"`
	Name           string     `json:"name,omitempty"`
	AdministeredOn civil.Date `json:"administered_on"`
	Dose           int        `json:"dose"`
	TotalDoses     int        `json:"total_doses"`
	AgeMonths      int        `json:"age_months"`
	NextDue        civil.Date `json:"next_due"`
	Status         Status     `json:"status" enums:"current,upcoming,overdue"`
	DaysUntilDue   int        `json:"days_until_due"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// recordHandler godoc
// @Summary Registrar vacuna
// @Description Registra una dosis y calcula la próxima fecha. Solo el dueño de la mascota. Si no se envía age_months se usa la edad según birth_date.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body recordRequest true "Dosis aplicada"
// @Success 201 {object} vaccinationResponse
// @Failure 400 {string} string "invalid json / dosis, edad o fecha inválidas"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/vaccinations [post]
func recordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req recordRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		day, err := civil.ParseDate(strings.TrimSpace(req.AdministeredOn))
		if err != nil {
			http.Error(w, "administered_on must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.Record(r.Context(), chi.URLParam(r, "petID"), claims.UserID, RecordInput{
			Name:           req.Name,
			AdministeredOn: day,
			Dose:           req.Dose,
			AgeMonths:      req.AgeMonths,
			TotalDoses:     req.TotalDoses,
			Notes:          req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toResponse(e))
	}
}

// listHandler godoc
// @Summary Listar vacunas de una mascota
// @Description Devuelve las vacunas con estado derivado (current, upcoming, overdue), ordenadas por próxima fecha.
// @Tags vaccinations
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param status query string false "current | upcoming | overdue | all"
// @Param q query string false "Texto en el nombre de la vacuna"
// @Success 200 {array} vaccinationResponse
// @Failure 400 {string} string "status inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/vaccinations [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		items, err := svc.List(r.Context(), chi.URLParam(r, "petID"), claims.UserID, ListFilter{
			Status: q.Get("status"),
			Query:  q.Get("q"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]vaccinationResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toResponse(e))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), claims.UserID, chi.URLParam(r, "vaccinationID"))
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// nextDueHandler godoc
// @Summary Calcular próxima dosis
// @Tags vaccinations
// @Produce json
// @Param administered query string true "Fecha de aplicación YYYY-MM-DD"
// @Param dose query int true "Número de dosis (>= 1)"
// @Param age_months query int true "Edad en meses (>= 1)"
// @Success 200 {object} vaccinationResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Router /vaccinations/next-due [get]
func nextDueHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		day, err := civil.ParseDate(strings.TrimSpace(q.Get("administered")))
		if err != nil {
			http.Error(w, "administered must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		dose, err := strconv.Atoi(strings.TrimSpace(q.Get("dose")))
		if err != nil {
			http.Error(w, ErrInvalidDose.Error(), http.StatusBadRequest)
			return
		}
		age, err := strconv.Atoi(strings.TrimSpace(q.Get("age_months")))
		if err != nil {
			http.Error(w, ErrInvalidAge.Error(), http.StatusBadRequest)
			return
		}

		e, err := svc.Calculate(day, dose, age)
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(e))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidDose),
		errors.Is(err, ErrInvalidAge),
		errors.Is(err, ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "vaccination not found", http.StatusNotFound)
	case errors.Is(err, pets.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(e Entry) vaccinationResponse {
	resp := vaccinationResponse{
		ID:             e.ID,
		PetID:          e.PetID,
		Name:           e.Name,
		AdministeredOn: e.AdministeredOn,
		Dose:           e.Dose,
		TotalDoses:     e.TotalDoses,
		AgeMonths:      e.AgeMonths,
		NextDue:        e.NextDue,
		Status:         e.Status,
		DaysUntilDue:   e.DaysUntilDue,
		Notes:          e.Notes,
	}
	if !e.CreatedAt.IsZero() {
		t := e.CreatedAt
		resp.CreatedAt = &t
	}
	return resp
}
