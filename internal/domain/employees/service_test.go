package employees

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Employee
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Employee{}}
}

func (r *testRepo) Create(ctx context.Context, e Employee) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Update(ctx context.Context, e Employee) error {
	if _, ok := r.byID[e.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return Employee{}, errRepoNotFound
	}
	return e, nil
}

func (r *testRepo) List(ctx context.Context) ([]Employee, error) {
	out := make([]Employee, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}

type testDogDir struct {
	known map[string]bool
}

func (d testDogDir) Exists(ctx context.Context, dogID string) (bool, error) {
	return d.known[dogID], nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	dir := testDogDir{known: map[string]bool{"d1": true, "d2": true}}
	return NewService(repo, dir), repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsActive(t *testing.T) {
	svc, _ := newTestService()

	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	e, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Pedro",
		LastName:  "Sánchez",
		Email:     "pedro@entaltek.com",
		Role:      RoleCaretaker,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if e.Status != StatusActive {
		t.Fatalf("expected active, got %s", e.Status)
	}
	if e.HireDate != now {
		t.Fatalf("expected HireDate defaulted to now")
	}
	if e.AssignedDogIDs == nil || len(e.AssignedDogIDs) != 0 {
		t.Fatalf("expected empty assignment list, got %#v", e.AssignedDogIDs)
	}
}

func TestService_Create_RejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Pedro",
		LastName:  "Sánchez",
		Email:     "pedro@entaltek.com",
		Role:      Role("janitor"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_SetStatus_Idempotent(t *testing.T) {
	svc, _ := newTestService()

	e, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Laura",
		LastName:  "Torres",
		Email:     "laura@entaltek.com",
		Role:      RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.SetStatus(context.Background(), e.ID, StatusInactive)
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if got.Status != StatusInactive {
		t.Fatalf("expected inactive, got %s", got.Status)
	}

	// repetir el mismo estado no es error
	got, err = svc.SetStatus(context.Background(), e.ID, StatusInactive)
	if err != nil {
		t.Fatalf("SetStatus #2 error: %v", err)
	}
	if got.Status != StatusInactive {
		t.Fatalf("expected inactive after idempotent set, got %s", got.Status)
	}

	if _, err := svc.SetStatus(context.Background(), e.ID, Status("fired")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestService_AssignDog(t *testing.T) {
	svc, repo := newTestService()

	e, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Pedro",
		LastName:  "Sánchez",
		Email:     "pedro@entaltek.com",
		Role:      RoleCaretaker,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.AssignDog(context.Background(), e.ID, "d1"); err != nil {
		t.Fatalf("AssignDog error: %v", err)
	}
	if err := svc.AssignDog(context.Background(), e.ID, "d2"); err != nil {
		t.Fatalf("AssignDog #2 error: %v", err)
	}

	// duplicado => Conflict, lista intacta
	if err := svc.AssignDog(context.Background(), e.ID, "d1"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	got := repo.byID[e.ID]
	if len(got.AssignedDogIDs) != 2 || got.AssignedDogIDs[0] != "d1" || got.AssignedDogIDs[1] != "d2" {
		t.Fatalf("expected [d1 d2] in assignment order, got %#v", got.AssignedDogIDs)
	}

	// perro inexistente => NotFound, todo-o-nada
	if err := svc.AssignDog(context.Background(), e.ID, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown dog, got %v", err)
	}
	if err := svc.AssignDog(context.Background(), "nobody", "d1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown employee, got %v", err)
	}
}

func TestService_UnassignDog(t *testing.T) {
	svc, repo := newTestService()

	e, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Pedro",
		LastName:  "Sánchez",
		Email:     "pedro@entaltek.com",
		Role:      RoleCaretaker,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	_ = svc.AssignDog(context.Background(), e.ID, "d1")
	_ = svc.AssignDog(context.Background(), e.ID, "d2")

	if err := svc.UnassignDog(context.Background(), e.ID, "d1"); err != nil {
		t.Fatalf("UnassignDog error: %v", err)
	}
	got := repo.byID[e.ID]
	if len(got.AssignedDogIDs) != 1 || got.AssignedDogIDs[0] != "d2" {
		t.Fatalf("expected [d2], got %#v", got.AssignedDogIDs)
	}

	// quitar algo que no estaba => NotFound
	if err := svc.UnassignDog(context.Background(), e.ID, "d1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
