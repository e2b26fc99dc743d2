package grooming

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
	r.Route("/grooming", func(gr chi.Router) {
		gr.Get("/services", treatmentsHandler(svc))
		gr.Get("/groomers", groomersHandler(svc))
		gr.Get("/availability", availabilityHandler(svc))
		gr.Post("/bookings", bookHandler(svc))
		gr.Post("/bookings/{id}/cancel", cancelHandler(svc))
	})
	r.Get("/me/grooming/bookings", myBookingsHandler(svc))
}

type bookRequest struct {
	ServiceID string `json:"service_id"`
	GroomerID string `json:"groomer_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Slot      string `json:"slot"` // "14:00" o "2:00 PM"
	PetName   string `json:"pet_name"`
	Notes     string `json:"notes"`
}

type bookingResponse struct {
	Booking
	SlotLabel string `json:"slot_label"`
}

func treatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Treatments(r.Context(), r.URL.Query().Get("sort"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}

func groomersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Groomers(r.Context(), r.URL.Query().Get("specialty"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}

// availabilityHandler godoc
// @Summary Turnos disponibles
// @Tags grooming
// @Produce json
// @Param groomer_id query string true "ID del groomer"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {array} SlotAvailability
// @Failure 400 {string} string "invalid input"
// @Router /grooming/availability [get]
func availabilityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		day, err := civil.ParseDate(strings.TrimSpace(q.Get("date")))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		slots, err := svc.Availability(r.Context(), q.Get("groomer_id"), day)
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, slots)
	}
}

// bookHandler godoc
// @Summary Reservar turno de peluquería
// @Tags grooming
// @Accept json
// @Produce json
// @Param payload body bookRequest true "Servicio, groomer, fecha y turno"
// @Success 201 {object} bookingResponse
// @Failure 400 {string} string "invalid input / fecha pasada"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "time slot already booked"
// @Router /grooming/bookings [post]
func bookHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req bookRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		day, err := civil.ParseDate(strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		b, err := svc.Book(r.Context(), claims.UserID, BookInput{
			TreatmentID: req.ServiceID,
			GroomerID:   req.GroomerID,
			Date:        day,
			Slot:        req.Slot,
			PetName:     req.PetName,
			Notes:       req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, bookingResponse{Booking: b, SlotLabel: SlotLabel(b.Slot)})
	}
}

func myBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.MyBookings(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]bookingResponse, 0, len(items))
		for _, b := range items {
			out = append(out, bookingResponse{Booking: b, SlotLabel: SlotLabel(b.Slot)})
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		b, err := svc.Cancel(r.Context(), chi.URLParam(r, "id"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, bookingResponse{Booking: b, SlotLabel: SlotLabel(b.Slot)})
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPastDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrSlotTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
