package dogs

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
	byID  map[string]Dog
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Dog{}}
}

func (r *testRepo) Create(ctx context.Context, d Dog) error {
	if d.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[d.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, d Dog) error {
	if _, ok := r.byID[d.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return Dog{}, errRepoNotFound
	}
	return d, nil
}

func (r *testRepo) List(ctx context.Context) ([]Dog, error) {
	out := make([]Dog, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Dog, error) {
	out := make([]Dog, 0)
	for _, id := range r.order {
		if d := r.byID[id]; d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

type testOwnerDir struct {
	owners map[string]OwnerSummary
}

func (o testOwnerDir) Exists(ctx context.Context, ownerID string) (bool, error) {
	_, ok := o.owners[ownerID]
	return ok, nil
}

func (o testOwnerDir) Summary(ctx context.Context, ownerID string) (OwnerSummary, error) {
	s, ok := o.owners[ownerID]
	if !ok {
		return OwnerSummary{}, errRepoNotFound
	}
	return s, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	dir := testOwnerDir{owners: map[string]OwnerSummary{
		"o1": {ID: "o1", FirstName: "María", LastName: "González", Email: "maria@email.com"},
	}}
	return NewService(repo, dir), repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsAndOwnerCheck(t *testing.T) {
	svc, _ := newTestService()

	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	d, err := svc.Create(context.Background(), CreateInput{
		Name:    "Rex",
		Breed:   "Pastor Alemán",
		Age:     3,
		Weight:  30,
		OwnerID: "o1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if d.ID == "" {
		t.Fatalf("expected generated id")
	}
	if d.Status != StatusCheckedOut {
		t.Fatalf("expected new dog checked-out, got %s", d.Status)
	}
	if d.CreatedAt != now {
		t.Fatalf("expected CreatedAt pinned to now")
	}
	if d.Medical.Medications == nil {
		t.Fatalf("expected medications defaulted to empty slice")
	}

	// la vista inversa owner->perros ya lo incluye
	mine, err := svc.ListByOwner(context.Background(), "o1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != d.ID {
		t.Fatalf("expected derived list [%s], got %#v", d.ID, mine)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"empty name", CreateInput{Breed: "Mixed", Age: 1, Weight: 5, OwnerID: "o1"}},
		{"empty breed", CreateInput{Name: "Rex", Age: 1, Weight: 5, OwnerID: "o1"}},
		{"empty owner", CreateInput{Name: "Rex", Breed: "Mixed", Age: 1, Weight: 5}},
		{"negative age", CreateInput{Name: "Rex", Breed: "Mixed", Age: -1, Weight: 5, OwnerID: "o1"}},
		{"zero weight", CreateInput{Name: "Rex", Breed: "Mixed", Age: 1, Weight: 0, OwnerID: "o1"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestService_Create_UnknownOwner_NotFound(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		Name:    "Rex",
		Breed:   "Mixed",
		Age:     1,
		Weight:  5,
		OwnerID: "no-such-owner",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected store intact, got %d records", len(repo.byID))
	}
}

func TestService_OwnerOf_DanglingReference(t *testing.T) {
	svc, repo := newTestService()

	// perro cuyo dueño ya no existe (data sucia): ok=false, nunca error
	repo.byID["d9"] = Dog{ID: "d9", Name: "Huacho", OwnerID: "gone"}
	repo.order = append(repo.order, "d9")

	if _, ok := svc.OwnerOf(context.Background(), repo.byID["d9"]); ok {
		t.Fatalf("expected ok=false for dangling owner")
	}
}

func TestService_UpdateProfile_PatchSemantics(t *testing.T) {
	svc, _ := newTestService()

	d, err := svc.Create(context.Background(), CreateInput{
		Name:    "Rocky",
		Breed:   "Bulldog",
		Age:     4,
		Weight:  12,
		Photo:   "https://example.com/rocky.jpg",
		OwnerID: "o1",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// solo nombre: el resto queda igual
	name := "Rocky II"
	got, err := svc.UpdateProfile(context.Background(), d.ID, UpdateProfileInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if got.Name != "Rocky II" || got.Breed != "Bulldog" || got.Photo != d.Photo {
		t.Fatalf("expected only name changed, got %#v", got)
	}

	// photo presente con nil => limpiar
	got, err = svc.UpdateProfile(context.Background(), d.ID, UpdateProfileInput{
		Photo: PatchPhoto{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("UpdateProfile photo error: %v", err)
	}
	if got.Photo != "" {
		t.Fatalf("expected photo cleared, got %q", got.Photo)
	}

	// patch inválido no toca nada
	empty := " "
	if _, err := svc.UpdateProfile(context.Background(), d.ID, UpdateProfileInput{Name: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	after, _ := svc.GetByID(context.Background(), d.ID)
	if after.Name != "Rocky II" {
		t.Fatalf("expected name untouched after invalid patch, got %q", after.Name)
	}
}

func TestService_UpdateProfile_MedicalMerge(t *testing.T) {
	svc, _ := newTestService()

	d, err := svc.Create(context.Background(), CreateInput{
		Name:    "Luna",
		Breed:   "Labrador",
		Age:     2,
		Weight:  24,
		OwnerID: "o1",
		Medical: Medical{Allergies: "polen", Notes: "nada"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	dew := true
	meds := []Medication{{ID: "m1", Name: "Apoquel", Dosage: "16mg", Frequency: "12h"}}
	got, err := svc.UpdateProfile(context.Background(), d.ID, UpdateProfileInput{
		Medical: &MedicalPatch{Dewormed: &dew, Medications: &meds},
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if !got.Medical.Dewormed || len(got.Medical.Medications) != 1 {
		t.Fatalf("expected medical patch applied, got %#v", got.Medical)
	}
	if got.Medical.Allergies != "polen" || got.Medical.Notes != "nada" {
		t.Fatalf("expected untouched medical fields kept, got %#v", got.Medical)
	}
}

func TestService_MarkCheckedIn_Out(t *testing.T) {
	svc, _ := newTestService()

	d, err := svc.Create(context.Background(), CreateInput{
		Name:    "Max",
		Breed:   "Golden Retriever",
		Age:     3,
		Weight:  28,
		OwnerID: "o1",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	in := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if err := svc.MarkCheckedIn(context.Background(), d.ID, in); err != nil {
		t.Fatalf("MarkCheckedIn error: %v", err)
	}
	got, _ := svc.GetByID(context.Background(), d.ID)
	if got.Status != StatusCheckedIn || got.CheckInTime == nil || !got.CheckInTime.Equal(in) {
		t.Fatalf("expected checked-in at %v, got %#v", in, got)
	}

	out := in.Add(8 * time.Hour)
	if err := svc.MarkCheckedOut(context.Background(), d.ID, out); err != nil {
		t.Fatalf("MarkCheckedOut error: %v", err)
	}
	got, _ = svc.GetByID(context.Background(), d.ID)
	if got.Status != StatusCheckedOut || got.CheckOutTime == nil || !got.CheckOutTime.Equal(out) {
		t.Fatalf("expected checked-out at %v, got %#v", out, got)
	}
}
