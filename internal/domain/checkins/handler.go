package checkins

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"entaltek-sabueso/internal/middleware"
	"entaltek-sabueso/internal/platform/listing"
	"entaltek-sabueso/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPageSize = 6
	maxPageSize     = 50
)

func RegisterRoutes(r chi.Router, svc *Service, notifier notify.Notifier) {
	r.Route("/checkins", func(cr chi.Router) {
		cr.Post("/", checkInHandler(svc, notifier))
		cr.Get("/", listCheckInsHandler(svc))
		cr.Get("/{checkInID}", getCheckInHandler(svc))
		cr.Post("/{checkInID}/checkout", checkOutHandler(svc, notifier))
	})

	// Historial por perro (lo consume el detalle del perro en el front)
	r.Get("/dogs/{dogID}/checkins", listDogCheckInsHandler(svc))
	r.Get("/dogs/{dogID}/checkins/active", getActiveCheckInHandler(svc))
}

type checkInRequest struct {
	DogID            string `json:"dog_id"`
	ServiceType      string `json:"service_type"`
	Notes            string `json:"notes"`
	ExpectedCheckOut string `json:"expected_check_out"` // RFC3339 opcional
}

type checkInResponse struct {
	ID               string      `json:"id"`
	DogID            string      `json:"dog_id"`
	DogName          string      `json:"dog_name"`
	OwnerName        string      `json:"owner_name"`
	ServiceType      ServiceType `json:"service_type"`
	CheckInTime      time.Time   `json:"check_in_time"`
	CheckOutTime     *time.Time  `json:"check_out_time,omitempty"`
	ExpectedCheckOut *time.Time  `json:"expected_check_out,omitempty"`
	Notes            string      `json:"notes,omitempty"`
	Status           Status      `json:"status"`
	CaretakerID      string      `json:"caretaker_id,omitempty"`
}

// counters tipo tablero de asistencia: activos y split por servicio.
type attendanceCounters struct {
	Active  int `json:"active"`
	Daycare int `json:"daycare"`
	Hotel   int `json:"hotel"`
}

type checkInListResponse struct {
	Items      []checkInResponse  `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
	Counters   attendanceCounters `json:"counters"`
}

func checkInHandler(svc *Service, notifier notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var expected *time.Time
		if strings.TrimSpace(req.ExpectedCheckOut) != "" {
			t, err := time.Parse(time.RFC3339, req.ExpectedCheckOut)
			if err != nil {
				http.Error(w, "expected_check_out must be RFC3339", http.StatusBadRequest)
				return
			}
			expected = &t
		}

		caretakerID, _ := middleware.GetActorID(r.Context())

		c, err := svc.CheckIn(r.Context(), CheckInInput{
			DogID:            req.DogID,
			ServiceType:      ServiceType(strings.TrimSpace(req.ServiceType)),
			Notes:            req.Notes,
			ExpectedCheckOut: expected,
			CaretakerID:      caretakerID,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrConflict):
				notifier.Notify(r.Context(), notify.Message{
					Severity:    notify.SeverityError,
					Title:       "Check-in rechazado",
					Description: "el perro ya tiene un check-in activo",
				})
				http.Error(w, "dog already has an active check-in", http.StatusConflict)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "dog not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		notifier.Notify(r.Context(), notify.Message{
			Severity:    notify.SeveritySuccess,
			Title:       "¡" + c.DogName + " registrado exitosamente!",
			Description: serviceLabel(c.ServiceType),
		})
		writeJSON(w, http.StatusCreated, toCheckInResponse(c))
	}
}

func checkOutHandler(svc *Service, notifier notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.CheckOut(r.Context(), chi.URLParam(r, "checkInID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "active check-in not found", http.StatusNotFound)
			return
		}

		notifier.Notify(r.Context(), notify.Message{
			Severity: notify.SeveritySuccess,
			Title:    "¡Hasta pronto, " + c.DogName + "!",
		})
		writeJSON(w, http.StatusOK, toCheckInResponse(c))
	}
}

func listCheckInsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// counters sobre la colección completa, no sobre la página
		var counters attendanceCounters
		for _, c := range items {
			if c.Status == StatusActive {
				counters.Active++
			}
			switch c.ServiceType {
			case ServiceDaycare:
				counters.Daycare++
			case ServiceHotel:
				counters.Hotel++
			}
		}

		filtered := listing.Filter(items, listing.Predicate[CheckIn]{
			Search:     r.URL.Query().Get("q"),
			Fields:     func(c CheckIn) []string { return []string{c.DogName, c.OwnerName} },
			Category:   r.URL.Query().Get("status"),
			CategoryOf: func(c CheckIn) string { return string(c.Status) },
		})
		filtered = listing.Filter(filtered, listing.Predicate[CheckIn]{
			Category:   r.URL.Query().Get("service_type"),
			CategoryOf: func(c CheckIn) string { return string(c.ServiceType) },
		})

		page := listing.Paginate(filtered, pageSize(r), pageNumber(r))

		out := make([]checkInResponse, 0, len(page.Items))
		for _, c := range page.Items {
			out = append(out, toCheckInResponse(c))
		}
		writeJSON(w, http.StatusOK, checkInListResponse{
			Items:      out,
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
			Counters:   counters,
		})
	}
}

func getCheckInHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "checkInID"))
		if err != nil {
			http.Error(w, "check-in not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toCheckInResponse(c))
	}
}

func listDogCheckInsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.HistoryByDog(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]checkInResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCheckInResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getActiveCheckInHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok, err := svc.ActiveByDog(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !ok {
			http.Error(w, "no active check-in", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toCheckInResponse(c))
	}
}

func serviceLabel(t ServiceType) string {
	if t == ServiceHotel {
		return "Servicio: Hotel"
	}
	return "Servicio: Guardería"
}

func toCheckInResponse(c CheckIn) checkInResponse {
	return checkInResponse{
		ID:               c.ID,
		DogID:            c.DogID,
		DogName:          c.DogName,
		OwnerName:        c.OwnerName,
		ServiceType:      c.ServiceType,
		CheckInTime:      c.CheckInTime,
		CheckOutTime:     c.CheckOutTime,
		ExpectedCheckOut: c.ExpectedCheckOut,
		Notes:            c.Notes,
		Status:           c.Status,
		CaretakerID:      c.CaretakerID,
	}
}

func pageNumber(r *http.Request) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func pageSize(r *http.Request) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("size")))
	if err != nil || n < 1 {
		return defaultPageSize
	}
	if n > maxPageSize {
		return maxPageSize
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
