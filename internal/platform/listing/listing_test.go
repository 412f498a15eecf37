package listing

import (
	"reflect"
	"testing"
)

type dog struct {
	Name   string
	Breed  string
	Status string
}

func dogFields(d dog) []string { return []string{d.Name, d.Breed} }

func TestFilter_SearchCaseInsensitive_MatchesAnyField(t *testing.T) {
	in := []dog{
		{Name: "Buddy", Breed: "Golden Retriever", Status: "checked-in"},
		{Name: "Rex", Breed: "Labrador", Status: "checked-out"},
	}

	out := Filter(in, Predicate[dog]{Search: "gold", Fields: dogFields})
	if len(out) != 1 || out[0].Name != "Buddy" {
		t.Fatalf("expected only Buddy, got %#v", out)
	}
}

func TestFilter_CategoryAll_DisablesFilter(t *testing.T) {
	in := []dog{
		{Name: "Buddy", Status: "checked-in"},
		{Name: "Rex", Status: "checked-out"},
	}
	p := Predicate[dog]{
		Category:   CategoryAll,
		CategoryOf: func(d dog) string { return d.Status },
	}

	out := Filter(in, p)
	if len(out) != 2 {
		t.Fatalf("expected 2 dogs with category=all, got %d", len(out))
	}
}

func TestFilter_SearchAndCategoryAreANDed(t *testing.T) {
	in := []dog{
		{Name: "Luna", Breed: "Poodle", Status: "checked-in"},
		{Name: "Lucy", Breed: "Poodle", Status: "checked-out"},
	}
	p := Predicate[dog]{
		Search:     "poodle",
		Fields:     dogFields,
		Category:   "checked-out",
		CategoryOf: func(d dog) string { return d.Status },
	}

	out := Filter(in, p)
	if len(out) != 1 || out[0].Name != "Lucy" {
		t.Fatalf("expected only Lucy, got %#v", out)
	}
}

func TestFilter_PreservesOrder_AndInput(t *testing.T) {
	in := []dog{
		{Name: "a1", Breed: "x"},
		{Name: "b", Breed: "y"},
		{Name: "a2", Breed: "x"},
		{Name: "a3", Breed: "x"},
	}
	orig := make([]dog, len(in))
	copy(orig, in)

	out := Filter(in, Predicate[dog]{Search: "x", Fields: dogFields})

	got := make([]string, 0, len(out))
	for _, d := range out {
		got = append(got, d.Name)
	}
	if !reflect.DeepEqual(got, []string{"a1", "a2", "a3"}) {
		t.Fatalf("expected original relative order, got %v", got)
	}
	if !reflect.DeepEqual(in, orig) {
		t.Fatalf("Filter mutated its input")
	}
}

func TestFilter_EmptyInput_ReturnsEmpty(t *testing.T) {
	out := Filter(nil, Predicate[dog]{Search: "x", Fields: dogFields})
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %#v", out)
	}
}

func TestPaginate_ClampsOutOfRangePage(t *testing.T) {
	seq := make([]int, 13)
	for i := range seq {
		seq[i] = i + 1
	}

	pg := Paginate(seq, 6, 10)
	if pg.Page != 3 || pg.TotalPages != 3 {
		t.Fatalf("expected page=3 totalPages=3, got page=%d totalPages=%d", pg.Page, pg.TotalPages)
	}
	if !reflect.DeepEqual(pg.Items, []int{13}) {
		t.Fatalf("expected items=[13], got %v", pg.Items)
	}

	pg = Paginate(seq, 6, -4)
	if pg.Page != 1 {
		t.Fatalf("expected clamp to page 1, got %d", pg.Page)
	}
}

func TestPaginate_Empty_StillOnePage(t *testing.T) {
	pg := Paginate([]int{}, 6, 1)
	if pg.TotalPages != 1 || pg.Page != 1 {
		t.Fatalf("expected 1 page for empty input, got page=%d totalPages=%d", pg.Page, pg.TotalPages)
	}
	if len(pg.Items) != 0 {
		t.Fatalf("expected no items, got %v", pg.Items)
	}
}

func TestPaginate_ConcatenatingPagesReconstructsSequence(t *testing.T) {
	seq := make([]int, 25)
	for i := range seq {
		seq[i] = i
	}

	rebuilt := make([]int, 0, len(seq))
	pg := Paginate(seq, 4, 1)
	for p := 1; p <= pg.TotalPages; p++ {
		pg = Paginate(seq, 4, p)
		if len(pg.Items) > 4 {
			t.Fatalf("page %d exceeds page size: %d items", p, len(pg.Items))
		}
		rebuilt = append(rebuilt, pg.Items...)
	}
	if !reflect.DeepEqual(rebuilt, seq) {
		t.Fatalf("concatenated pages != original sequence")
	}
}
