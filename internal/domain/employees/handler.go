package employees

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"entaltek-sabueso/internal/domain/checkins"
	"entaltek-sabueso/internal/domain/dogs"
	"entaltek-sabueso/internal/platform/listing"
	"entaltek-sabueso/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPageSize = 6
	maxPageSize     = 50

	recentCheckInsLimit = 10
)

// El detalle de empleado une tres módulos (perros asignados, perros sin
// asignar, check-ins recientes), así que el handler recibe los services
// de dogs y checkins además del propio.
func RegisterRoutes(r chi.Router, svc *Service, dogsSvc *dogs.Service, checkinsSvc *checkins.Service, notifier notify.Notifier) {
	r.Route("/employees", func(er chi.Router) {
		er.Post("/", createEmployeeHandler(svc, notifier))
		er.Get("/", listEmployeesHandler(svc))
		er.Get("/{employeeID}", getEmployeeDetailHandler(svc, dogsSvc, checkinsSvc))
		er.Patch("/{employeeID}/status", setEmployeeStatusHandler(svc))
		er.Post("/{employeeID}/dogs/{dogID}", assignDogHandler(svc))
		er.Delete("/{employeeID}/dogs/{dogID}", unassignDogHandler(svc))
	})
}

type createEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	HireDate  string `json:"hire_date"` // YYYY-MM-DD opcional
	Photo     string `json:"photo"`
}

type employeeResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Role           Role      `json:"role"`
	Status         Status    `json:"status"`
	HireDate       time.Time `json:"hire_date"`
	Photo          string    `json:"photo,omitempty"`
	AssignedDogIDs []string  `json:"assigned_dog_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

type assignedDogResponse struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Breed  string      `json:"breed"`
	Status dogs.Status `json:"status"`
}

type employeeCheckInResponse struct {
	ID          string               `json:"id"`
	DogID       string               `json:"dog_id"`
	DogName     string               `json:"dog_name"`
	OwnerName   string               `json:"owner_name"`
	ServiceType checkins.ServiceType `json:"service_type"`
	CheckInTime time.Time            `json:"check_in_time"`
	Status      checkins.Status      `json:"status"`
}

type employeeDetailResponse struct {
	Employee       employeeResponse          `json:"employee"`
	AssignedDogs   []assignedDogResponse     `json:"assigned_dogs"`
	UnassignedDogs []assignedDogResponse     `json:"unassigned_dogs"`
	RecentCheckIns []employeeCheckInResponse `json:"recent_check_ins"`
	DistinctOwners int                       `json:"distinct_owners"`
}

func createEmployeeHandler(svc *Service, notifier notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var hire *time.Time
		if strings.TrimSpace(req.HireDate) != "" {
			t, err := time.Parse("2006-01-02", req.HireDate)
			if err != nil {
				http.Error(w, "hire_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			hire = &t
		}

		e, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Role:      Role(strings.TrimSpace(req.Role)),
			HireDate:  hire,
			Photo:     req.Photo,
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
			Title:    e.FullName() + " agregado al equipo",
		})
		writeJSON(w, http.StatusCreated, toEmployeeResponse(e))
	}
}

func listEmployeesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		filtered := listing.Filter(items, listing.Predicate[Employee]{
			Search:     r.URL.Query().Get("q"),
			Fields:     func(e Employee) []string { return []string{e.FullName(), e.Email} },
			Category:   r.URL.Query().Get("role"),
			CategoryOf: func(e Employee) string { return string(e.Role) },
		})
		filtered = listing.Filter(filtered, listing.Predicate[Employee]{
			Category:   r.URL.Query().Get("status"),
			CategoryOf: func(e Employee) string { return string(e.Status) },
		})

		page := listing.Paginate(filtered, pageSize(r), pageNumber(r))

		out := make([]employeeResponse, 0, len(page.Items))
		for _, e := range page.Items {
			out = append(out, toEmployeeResponse(e))
		}
		writeJSON(w, http.StatusOK, listing.Page[employeeResponse]{
			Items:      out,
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		})
	}
}

func getEmployeeDetailHandler(svc *Service, dogsSvc *dogs.Service, checkinsSvc *checkins.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "employeeID"))
		if err != nil {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}

		// Perros asignados, en el orden de asignación; un id que ya no
		// exista en el store se saltea en silencio.
		assigned := make([]assignedDogResponse, 0, len(e.AssignedDogIDs))
		assignedSet := make(map[string]struct{}, len(e.AssignedDogIDs))
		distinctOwners := map[string]struct{}{}
		for _, id := range e.AssignedDogIDs {
			assignedSet[id] = struct{}{}
			d, err := dogsSvc.GetByID(r.Context(), id)
			if err != nil {
				continue
			}
			assigned = append(assigned, toAssignedDog(d))
			distinctOwners[d.OwnerID] = struct{}{}
		}

		all, err := dogsSvc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		unassigned := make([]assignedDogResponse, 0)
		for _, d := range all {
			if _, ok := assignedSet[d.ID]; ok {
				continue
			}
			unassigned = append(unassigned, toAssignedDog(d))
		}

		recent, err := checkinsSvc.ListByCaretaker(r.Context(), e.ID, recentCheckInsLimit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		recentOut := make([]employeeCheckInResponse, 0, len(recent))
		for _, c := range recent {
			recentOut = append(recentOut, employeeCheckInResponse{
				ID:          c.ID,
				DogID:       c.DogID,
				DogName:     c.DogName,
				OwnerName:   c.OwnerName,
				ServiceType: c.ServiceType,
				CheckInTime: c.CheckInTime,
				Status:      c.Status,
			})
		}

		writeJSON(w, http.StatusOK, employeeDetailResponse{
			Employee:       toEmployeeResponse(e),
			AssignedDogs:   assigned,
			UnassignedDogs: unassigned,
			RecentCheckIns: recentOut,
			DistinctOwners: len(distinctOwners),
		})
	}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func setEmployeeStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.SetStatus(r.Context(), chi.URLParam(r, "employeeID"), Status(strings.TrimSpace(req.Status)))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "status must be active or inactive", http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "employee not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toEmployeeResponse(e))
	}
}

func assignDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.AssignDog(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "dogID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrConflict):
				http.Error(w, "dog already assigned", http.StatusConflict)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "employee or dog not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func unassignDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.UnassignDog(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "dogID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "assignment not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toEmployeeResponse(e Employee) employeeResponse {
	ids := e.AssignedDogIDs
	if ids == nil {
		ids = []string{}
	}
	return employeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		Role:           e.Role,
		Status:         e.Status,
		HireDate:       e.HireDate,
		Photo:          e.Photo,
		AssignedDogIDs: ids,
		CreatedAt:      e.CreatedAt,
	}
}

func toAssignedDog(d dogs.Dog) assignedDogResponse {
	return assignedDogResponse{
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
