package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"entaltek-sabueso/internal/platform/listing"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, c *Catalog) {
	r.Route("/services", func(sr chi.Router) {
		sr.Post("/", createServiceHandler(c))
		sr.Get("/", listServicesHandler(c))
		sr.Get("/{serviceID}", getServiceHandler(c))
		sr.Put("/{serviceID}", updateServiceHandler(c))
		sr.Delete("/{serviceID}", deleteServiceHandler(c))
	})
}

type serviceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Type        string  `json:"type"`
	Duration    string  `json:"duration"`
}

type serviceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Type        Type      `json:"type"`
	Duration    string    `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func createServiceHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req serviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := c.Create(r.Context(), toInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toServiceResponse(s))
	}
}

func listServicesHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := c.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		filtered := listing.Filter(items, listing.Predicate[Service]{
			Search:     r.URL.Query().Get("q"),
			Fields:     func(s Service) []string { return []string{s.Name, s.Description} },
			Category:   r.URL.Query().Get("type"),
			CategoryOf: func(s Service) string { return string(s.Type) },
		})

		out := make([]serviceResponse, 0, len(filtered))
		for _, s := range filtered {
			out = append(out, toServiceResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getServiceHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := c.GetByID(r.Context(), chi.URLParam(r, "serviceID"))
		if err != nil {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toServiceResponse(s))
	}
}

func updateServiceHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req serviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := c.Update(r.Context(), chi.URLParam(r, "serviceID"), toInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "service not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toServiceResponse(s))
	}
}

func deleteServiceHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.Delete(r.Context(), chi.URLParam(r, "serviceID")); err != nil {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toInput(req serviceRequest) ServiceInput {
	return ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        Type(strings.TrimSpace(req.Type)),
		Duration:    req.Duration,
	}
}

func toServiceResponse(s Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Type:        s.Type,
		Duration:    s.Duration,
		CreatedAt:   s.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
