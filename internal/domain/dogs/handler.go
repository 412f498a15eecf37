package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"entaltek-sabueso/internal/platform/listing"
	"entaltek-sabueso/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPageSize = 6
	maxPageSize     = 50
)

func RegisterRoutes(r chi.Router, svc *Service, notifier notify.Notifier) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc, notifier))
		dr.Get("/", listDogsHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Patch("/{dogID}", updateDogHandler(svc))
	})
}

type createDogRequest struct {
	Name    string   `json:"name"`
	Breed   string   `json:"breed"`
	Age     *int     `json:"age"`
	Weight  *float64 `json:"weight"`
	Photo   string   `json:"photo"`
	OwnerID string   `json:"owner_id"`
	Medical *Medical `json:"medical"`
}

type ownerSummaryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type dogResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Breed        string                `json:"breed"`
	Age          int                   `json:"age"`
	Weight       float64               `json:"weight"`
	Photo        string                `json:"photo,omitempty"`
	OwnerID      string                `json:"owner_id"`
	Owner        *ownerSummaryResponse `json:"owner,omitempty"`
	Status       Status                `json:"status"`
	CheckInTime  *time.Time            `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time            `json:"check_out_time,omitempty"`
	Medical      Medical               `json:"medical"`
	CreatedAt    time.Time             `json:"created_at"`
}

func createDogHandler(svc *Service, notifier notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Age == nil || req.Weight == nil {
			http.Error(w, "age and weight are required", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Name:    req.Name,
			Breed:   req.Breed,
			Age:     *req.Age,
			Weight:  *req.Weight,
			Photo:   req.Photo,
			OwnerID: req.OwnerID,
		}
		if req.Medical != nil {
			in.Medical = *req.Medical
		}

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		notifier.Notify(r.Context(), notify.Message{
			Severity:    notify.SeveritySuccess,
			Title:       "¡" + d.Name + " registrado exitosamente!",
			Description: d.Breed,
		})
		writeJSON(w, http.StatusCreated, toDogResponse(d, nil))
	}
}

func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		filtered := listing.Filter(items, listing.Predicate[Dog]{
			Search:     r.URL.Query().Get("q"),
			Fields:     func(d Dog) []string { return []string{d.Name, d.Breed} },
			Category:   r.URL.Query().Get("status"),
			CategoryOf: func(d Dog) string { return string(d.Status) },
		})

		page := listing.Paginate(filtered, pageSize(r), pageNumber(r))

		out := make([]dogResponse, 0, len(page.Items))
		for _, d := range page.Items {
			out = append(out, toDogResponse(d, nil))
		}
		writeJSON(w, http.StatusOK, listing.Page[dogResponse]{
			Items:      out,
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		})
	}
}

func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		// dueño colgante => owner null, nunca 500
		var owner *ownerSummaryResponse
		if o, ok := svc.OwnerOf(r.Context(), d); ok {
			owner = &ownerSummaryResponse{
				ID:        o.ID,
				FirstName: o.FirstName,
				LastName:  o.LastName,
				Email:     o.Email,
				Phone:     o.Phone,
			}
		}
		writeJSON(w, http.StatusOK, toDogResponse(d, owner))
	}
}

type updateDogRequest struct {
	Name    *string              `json:"name"`
	Breed   *string              `json:"breed"`
	Age     *int                 `json:"age"`
	Weight  *float64             `json:"weight"`
	Photo   *string              `json:"photo"`
	Medical *medicalPatchRequest `json:"medical"`
}

type medicalPatchRequest struct {
	Vaccines    *Vaccines     `json:"vaccines"`
	Dewormed    *bool         `json:"dewormed"`
	Allergies   *string       `json:"allergies"`
	Medications *[]Medication `json:"medications"`
	Notes       *string       `json:"notes"`
	Limitations *string       `json:"limitations"`
}

func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogID := chi.URLParam(r, "dogID")

		// Decodificamos a map primero para detectar "photo": null
		// (limpiar foto) vs campo no enviado.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateDogRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		photo := PatchPhoto{}
		if v, exists := raw["photo"]; exists {
			photo.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "photo must be a string or null", http.StatusBadRequest)
					return
				}
				photo.Value = &s
			}
		}

		in := UpdateProfileInput{
			Name:   req.Name,
			Breed:  req.Breed,
			Age:    req.Age,
			Weight: req.Weight,
			Photo:  photo,
		}
		if req.Medical != nil {
			in.Medical = &MedicalPatch{
				Vaccines:    req.Medical.Vaccines,
				Dewormed:    req.Medical.Dewormed,
				Allergies:   req.Medical.Allergies,
				Medications: req.Medical.Medications,
				Notes:       req.Medical.Notes,
				Limitations: req.Medical.Limitations,
			}
		}

		d, err := svc.UpdateProfile(r.Context(), dogID, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d, nil))
	}
}

func toDogResponse(d Dog, owner *ownerSummaryResponse) dogResponse {
	return dogResponse{
		ID:           d.ID,
		Name:         d.Name,
		Breed:        d.Breed,
		Age:          d.Age,
		Weight:       d.Weight,
		Photo:        d.Photo,
		OwnerID:      d.OwnerID,
		Owner:        owner,
		Status:       d.Status,
		CheckInTime:  d.CheckInTime,
		CheckOutTime: d.CheckOutTime,
		Medical:      d.Medical,
		CreatedAt:    d.CreatedAt,
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

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que los paths de paginación: extraer helpers compartidos recién
// paga cuando haya más repetición.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
