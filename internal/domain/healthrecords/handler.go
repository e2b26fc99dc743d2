package healthrecords

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
	r.Route("/pets/{petID}/medications", func(mr chi.Router) {
		mr.Post("/", prescribeHandler(svc))
		mr.Get("/", listMedicationsHandler(svc))
		mr.Post("/{medicationID}/stop", stopMedicationHandler(svc))
	})
	r.Route("/pets/{petID}/appointments", func(ar chi.Router) {
		ar.Post("/", scheduleHandler(svc))
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/{appointmentID}/cancel", cancelAppointmentHandler(svc))
	})
}

type medicationRequest struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // opcional
	NextDose  string `json:"next_dose"`  // opcional
	Notes     string `json:"notes"`
}

type medicationResponse struct {
	ID        string           `json:"id"`
	PetID     string           `json:"pet_id"`
	Name      string           `json:"name"`
	Dosage    string           `json:"dosage"`
	Frequency string           `json:"frequency"`
	StartDate civil.Date       `json:"start_date"`
	EndDate   *civil.Date      `json:"end_date,omitempty"`
	NextDose  *civil.Date      `json:"next_dose,omitempty"`
	Status    MedicationStatus `json:"status" enums:"active,stopped"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

type appointmentRequest struct {
	Type     string `json:"type"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // "10:00" o "10:00 AM"
	Vet      string `json:"vet"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

type appointmentResponse struct {
	ID        string            `json:"id"`
	PetID     string            `json:"pet_id"`
	Type      string            `json:"type"`
	Date      civil.Date        `json:"date"`
	Time      string            `json:"time"`
	TimeLabel string            `json:"time_label"`
	Vet       string            `json:"vet,omitempty"`
	Location  string            `json:"location,omitempty"`
	Status    AppointmentStatus `json:"status" enums:"upcoming,completed,cancelled"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// prescribeHandler godoc
// @Summary Registrar medicación
// @Description Solo el dueño de la mascota.
// @Tags health
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body medicationRequest true "Medicación"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / fechas inválidas"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/medications [post]
func prescribeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req medicationRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start, err := civil.ParseDate(strings.TrimSpace(req.StartDate))
		if err != nil {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end, err := optionalDate(req.EndDate)
		if err != nil {
			http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		next, err := optionalDate(req.NextDose)
		if err != nil {
			http.Error(w, "next_dose must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		m, err := svc.Prescribe(r.Context(), chi.URLParam(r, "petID"), claims.UserID, MedicationInput{
			Name:      req.Name,
			Dosage:    req.Dosage,
			Frequency: req.Frequency,
			StartDate: start,
			EndDate:   end,
			NextDose:  next,
			Notes:     req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param status query string false "active | stopped | all"
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /pets/{petID}/medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Medications(r.Context(), chi.URLParam(r, "petID"), claims.UserID, r.URL.Query().Get("status"))
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func stopMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.StopMedication(r.Context(), chi.URLParam(r, "petID"), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toMedicationResponse(m))
	}
}

// scheduleHandler godoc
// @Summary Agendar cita veterinaria
// @Tags health
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body appointmentRequest true "Cita"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / fecha u hora inválidas"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/appointments [post]
func scheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req appointmentRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		day, err := civil.ParseDate(strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.Schedule(r.Context(), chi.URLParam(r, "petID"), claims.UserID, AppointmentInput{
			Type:     req.Type,
			Date:     day,
			Time:     req.Time,
			Vet:      req.Vet,
			Location: req.Location,
			Notes:    req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toAppointmentResponse(e))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Ordenadas por fecha y hora. upcoming=true deja solo las futuras no canceladas.
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param upcoming query bool false "Solo próximas"
// @Param status query string false "upcoming | completed | cancelled | all"
// @Success 200 {array} appointmentResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /pets/{petID}/appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		var upcoming bool
		if raw := strings.TrimSpace(q.Get("upcoming")); raw != "" {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				http.Error(w, "upcoming must be true or false", http.StatusBadRequest)
				return
			}
			upcoming = b
		}

		items, err := svc.Appointments(r.Context(), chi.URLParam(r, "petID"), claims.UserID, AppointmentFilter{
			Upcoming: upcoming,
			Status:   q.Get("status"),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]appointmentResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toAppointmentResponse(e))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func cancelAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		e, err := svc.CancelAppointment(r.Context(), chi.URLParam(r, "petID"), claims.UserID, chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toAppointmentResponse(e))
	}
}

func optionalDate(s string) (*civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidTime):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, pets.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrAlreadyPassed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:        m.ID,
		PetID:     m.PetID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		NextDose:  m.NextDose,
		Status:    m.Status,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

func toAppointmentResponse(e AppointmentEntry) appointmentResponse {
	return appointmentResponse{
		ID:        e.ID,
		PetID:     e.PetID,
		Type:      e.Type,
		Date:      e.Date,
		Time:      e.Time,
		TimeLabel: ClockLabel(e.Time),
		Vet:       e.Vet,
		Location:  e.Location,
		Status:    e.Status,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}
