package owners

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Owner
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Owner{}}
}

func (r *testRepo) Create(ctx context.Context, o Owner) error {
	if o.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return Owner{}, errRepoNotFound
	}
	return o, nil
}

func (r *testRepo) List(ctx context.Context) ([]Owner, error) {
	out := make([]Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	return out, nil
}

func TestService_Create(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	o, err := svc.Create(context.Background(), CreateInput{
		FirstName: "María",
		LastName:  "González",
		Email:     "maria@email.com",
		Phone:     "555-0101",
		Address:   "  Av. Reforma 123  ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if o.ID == "" || o.CreatedAt != now {
		t.Fatalf("expected generated id and pinned CreatedAt, got %#v", o)
	}
	if o.Address != "Av. Reforma 123" {
		t.Fatalf("expected trimmed address, got %q", o.Address)
	}
	if o.FullName() != "María González" {
		t.Fatalf("expected full name, got %q", o.FullName())
	}
}

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"no first name", CreateInput{LastName: "González", Email: "a@b.com", Phone: "1"}},
		{"no last name", CreateInput{FirstName: "María", Email: "a@b.com", Phone: "1"}},
		{"no email", CreateInput{FirstName: "María", LastName: "González", Phone: "1"}},
		{"no phone", CreateInput{FirstName: "María", LastName: "González", Email: "a@b.com"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestService_Directory(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	o, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Carlos",
		LastName:  "Ramírez",
		Email:     "carlos@email.com",
		Phone:     "555-0102",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if ok, _ := svc.Exists(context.Background(), o.ID); !ok {
		t.Fatalf("expected Exists true")
	}
	if ok, _ := svc.Exists(context.Background(), "ghost"); ok {
		t.Fatalf("expected Exists false for unknown id")
	}

	name, err := svc.FullNameOf(context.Background(), o.ID)
	if err != nil || name != "Carlos Ramírez" {
		t.Fatalf("expected full name, got %q err=%v", name, err)
	}
	if _, err := svc.FullNameOf(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	sum, err := svc.Summary(context.Background(), o.ID)
	if err != nil || sum.ID != o.ID || sum.FirstName != "Carlos" {
		t.Fatalf("expected summary for %s, got %#v err=%v", o.ID, sum, err)
	}
}
