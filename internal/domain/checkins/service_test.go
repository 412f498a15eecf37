package checkins

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
	byID  map[string]CheckIn
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]CheckIn{}}
}

func (r *testRepo) Create(ctx context.Context, c CheckIn) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, c CheckIn) error {
	if _, ok := r.byID[c.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (CheckIn, error) {
	c, ok := r.byID[id]
	if !ok {
		return CheckIn{}, errRepoNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context) ([]CheckIn, error) {
	out := make([]CheckIn, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *testRepo) ListByDog(ctx context.Context, dogID string) ([]CheckIn, error) {
	out := make([]CheckIn, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.DogID == dogID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) GetActiveByDog(ctx context.Context, dogID string) (CheckIn, error) {
	for _, c := range r.byID {
		if c.DogID == dogID && c.Status == StatusActive {
			return c, nil
		}
	}
	return CheckIn{}, errRepoNotFound
}

func (r *testRepo) ListByCaretaker(ctx context.Context, employeeID string, limit int) ([]CheckIn, error) {
	out := make([]CheckIn, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.CaretakerID == employeeID {
			out = append(out, c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// -------------------------
// Directorios fake
// -------------------------

type testDogDir struct {
	snapshots map[string]DogSnapshot
	statuses  map[string]string // dogID => checked-in / checked-out
}

func newTestDogDir() *testDogDir {
	return &testDogDir{
		snapshots: map[string]DogSnapshot{},
		statuses:  map[string]string{},
	}
}

func (d *testDogDir) Snapshot(ctx context.Context, dogID string) (DogSnapshot, error) {
	s, ok := d.snapshots[dogID]
	if !ok {
		return DogSnapshot{}, errRepoNotFound
	}
	return s, nil
}

func (d *testDogDir) MarkCheckedIn(ctx context.Context, dogID string, at time.Time) error {
	d.statuses[dogID] = "checked-in"
	return nil
}

func (d *testDogDir) MarkCheckedOut(ctx context.Context, dogID string, at time.Time) error {
	d.statuses[dogID] = "checked-out"
	return nil
}

type testOwnerDir struct {
	names map[string]string
}

func (o testOwnerDir) FullNameOf(ctx context.Context, ownerID string) (string, error) {
	name, ok := o.names[ownerID]
	if !ok {
		return "", errRepoNotFound
	}
	return name, nil
}

func newTestService() (*Service, *testRepo, *testDogDir) {
	repo := newTestRepo()
	dogs := newTestDogDir()
	dogs.snapshots["d1"] = DogSnapshot{Name: "Max", OwnerID: "o1"}
	owners := testOwnerDir{names: map[string]string{"o1": "María González"}}
	return NewService(repo, dogs, owners), repo, dogs
}

// -------------------------
// Tests
// -------------------------

func TestService_CheckIn_FreezesNamesAndMarksDog(t *testing.T) {
	svc, _, dogs := newTestService()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	c, err := svc.CheckIn(context.Background(), CheckInInput{
		DogID:       "d1",
		ServiceType: ServiceDaycare,
		CaretakerID: "e1",
	})
	if err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}
	if c.Status != StatusActive {
		t.Fatalf("expected active, got %s", c.Status)
	}
	if c.DogName != "Max" || c.OwnerName != "María González" {
		t.Fatalf("expected frozen snapshots, got dog=%q owner=%q", c.DogName, c.OwnerName)
	}
	if c.CheckInTime != now {
		t.Fatalf("expected CheckInTime pinned to now")
	}
	if dogs.statuses["d1"] != "checked-in" {
		t.Fatalf("expected dog marked checked-in")
	}
}

func TestService_CheckIn_SecondActive_ConflictAndStoreIntact(t *testing.T) {
	svc, repo, _ := newTestService()

	if _, err := svc.CheckIn(context.Background(), CheckInInput{DogID: "d1", ServiceType: ServiceDaycare}); err != nil {
		t.Fatalf("CheckIn #1 error: %v", err)
	}

	_, err := svc.CheckIn(context.Background(), CheckInInput{DogID: "d1", ServiceType: ServiceHotel})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected store intact with 1 record, got %d", len(repo.byID))
	}
}

func TestService_CheckIn_UnknownDog_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CheckIn(context.Background(), CheckInInput{DogID: "nope", ServiceType: ServiceDaycare})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_CheckIn_InvalidServiceType(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CheckIn(context.Background(), CheckInInput{DogID: "d1", ServiceType: ServiceType("spa")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_CheckIn_DanglingOwner_EmptyName(t *testing.T) {
	repo := newTestRepo()
	dogs := newTestDogDir()
	dogs.snapshots["d9"] = DogSnapshot{Name: "Huacho", OwnerID: "gone"}
	svc := NewService(repo, dogs, testOwnerDir{names: map[string]string{}})

	c, err := svc.CheckIn(context.Background(), CheckInInput{DogID: "d9", ServiceType: ServiceDaycare})
	if err != nil {
		t.Fatalf("CheckIn error: %v", err)
	}
	if c.OwnerName != "" {
		t.Fatalf("expected empty owner name for dangling reference, got %q", c.OwnerName)
	}
}

func TestService_CheckOut_ClosesAndAllowsReentry(t *testing.T) {
	svc, repo, dogs := newTestService()

	in := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(6 * time.Hour)

	svc.now = func() time.Time { return in }
	c1, err := svc.CheckIn(context.Background(), CheckInInput{DogID: "d1", ServiceType: ServiceDaycare})
	if err != nil {
		t.Fatalf("CheckIn error: %v", err)
	}

	svc.now = func() time.Time { return out }
	closed, err := svc.CheckOut(context.Background(), c1.ID)
	if err != nil {
		t.Fatalf("CheckOut error: %v", err)
	}
	if closed.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", closed.Status)
	}
	if closed.CheckOutTime == nil || !closed.CheckOutTime.Equal(out) {
		t.Fatalf("expected CheckOutTime pinned, got %v", closed.CheckOutTime)
	}
	if dogs.statuses["d1"] != "checked-out" {
		t.Fatalf("expected dog marked checked-out")
	}

	// reingreso: historial con 2 registros, el primero sigue completado
	c2, err := svc.CheckIn(context.Background(), CheckInInput{DogID: "d1", ServiceType: ServiceHotel})
	if err != nil {
		t.Fatalf("re-CheckIn error: %v", err)
	}
	if c2.ID == c1.ID {
		t.Fatalf("expected a new record for the second visit")
	}
	hist, _ := svc.HistoryByDog(context.Background(), "d1")
	if len(hist) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(hist))
	}
	if got := repo.byID[c1.ID].Status; got != StatusCompleted {
		t.Fatalf("expected first visit untouched, got %s", got)
	}
}

func TestService_CheckOut_Completed_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	c, err := svc.CheckIn(context.Background(), CheckInInput{DogID: "d1", ServiceType: ServiceDaycare})
	if err != nil {
		t.Fatalf("CheckIn error: %v", err)
	}
	if _, err := svc.CheckOut(context.Background(), c.ID); err != nil {
		t.Fatalf("CheckOut error: %v", err)
	}

	// un check-in completado es inmutable: segundo checkout => NotFound
	_, err = svc.CheckOut(context.Background(), c.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ActiveByDog(t *testing.T) {
	svc, _, _ := newTestService()

	if _, ok, _ := svc.ActiveByDog(context.Background(), "d1"); ok {
		t.Fatalf("expected no active check-in before check-in")
	}

	c, _ := svc.CheckIn(context.Background(), CheckInInput{DogID: "d1", ServiceType: ServiceDaycare})

	got, ok, err := svc.ActiveByDog(context.Background(), "d1")
	if err != nil || !ok {
		t.Fatalf("expected active check-in, ok=%v err=%v", ok, err)
	}
	if got.ID != c.ID {
		t.Fatalf("expected active %s, got %s", c.ID, got.ID)
	}
}
