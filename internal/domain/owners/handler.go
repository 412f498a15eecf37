package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"entaltek-sabueso/internal/domain/dogs"
	"entaltek-sabueso/internal/platform/listing"
	"entaltek-sabueso/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPageSize = 6
	maxPageSize     = 50
)

func RegisterRoutes(r chi.Router, svc *Service, dogsSvc *dogs.Service, notifier notify.Notifier) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc, notifier))
		or.Get("/", listOwnersHandler(svc, dogsSvc))
		or.Get("/{ownerID}", getOwnerHandler(svc, dogsSvc))
		or.Get("/{ownerID}/dogs", listOwnerDogsHandler(svc, dogsSvc))
	})
}

type createOwnerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type dogSummaryResponse struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Breed  string      `json:"breed"`
	Status dogs.Status `json:"status"`
}

type ownerResponse struct {
	ID        string               `json:"id"`
	FirstName string               `json:"first_name"`
	LastName  string               `json:"last_name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone"`
	Address   string               `json:"address,omitempty"`
	Dogs      []dogSummaryResponse `json:"dogs"`
	CreatedAt time.Time            `json:"created_at"`
}

func createOwnerHandler(svc *Service, notifier notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		notifier.Notify(r.Context(), notify.Message{
			Severity: notify.SeveritySuccess,
			Title:    o.FullName() + " registrado como padre/madre",
		})
		writeJSON(w, http.StatusCreated, toOwnerResponse(o, nil))
	}
}

func listOwnersHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// búsqueda por "nombre apellido" concatenado o email, como el front
		filtered := listing.Filter(items, listing.Predicate[Owner]{
			Search: r.URL.Query().Get("q"),
			Fields: func(o Owner) []string { return []string{o.FullName(), o.Email} },
		})

		page := listing.Paginate(filtered, pageSize(r), pageNumber(r))

		out := make([]ownerResponse, 0, len(page.Items))
		for _, o := range page.Items {
			ownerDogs, _ := dogsSvc.ListByOwner(r.Context(), o.ID)
			out = append(out, toOwnerResponse(o, ownerDogs))
		}
		writeJSON(w, http.StatusOK, listing.Page[ownerResponse]{
			Items:      out,
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		})
	}
}

func getOwnerHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		ownerDogs, _ := dogsSvc.ListByOwner(r.Context(), o.ID)
		writeJSON(w, http.StatusOK, toOwnerResponse(o, ownerDogs))
	}
}

func listOwnerDogsHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		ownerDogs, err := dogsSvc.ListByOwner(r.Context(), o.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]dogSummaryResponse, 0, len(ownerDogs))
		for _, d := range ownerDogs {
			out = append(out, toDogSummary(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toOwnerResponse(o Owner, ownerDogs []dogs.Dog) ownerResponse {
	ds := make([]dogSummaryResponse, 0, len(ownerDogs))
	for _, d := range ownerDogs {
		ds = append(ds, toDogSummary(d))
	}
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		Dogs:      ds,
		CreatedAt: o.CreatedAt,
	}
}

func toDogSummary(d dogs.Dog) dogSummaryResponse {
	return dogSummaryResponse{
		ID:     d.ID,
		Name:   d.Name,
		Breed:  d.Breed,
		Status: d.Status,
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
