package listing

import "strings"

// CategoryAll es el valor sentinela que desactiva el filtro por categoría.
const CategoryAll = "all"

// Predicate combina búsqueda libre + filtro categórico (ANDed).
// - Search: substring case-insensitive contra Fields(item).
// - Category: igualdad exacta contra CategoryOf(item); "all" o vacío la desactiva.
type Predicate[T any] struct {
	Search string
	Fields func(T) []string

	Category   string
	CategoryOf func(T) string
}

// Filter devuelve el subconjunto que cumple el predicado, en el orden original.
// Nunca muta la entrada; sin matches devuelve slice vacío, no nil-error.
func Filter[T any](items []T, p Predicate[T]) []T {
	q := strings.ToLower(strings.TrimSpace(p.Search))
	cat := strings.TrimSpace(p.Category)
	catActive := cat != "" && cat != CategoryAll && p.CategoryOf != nil

	out := make([]T, 0, len(items))
	for _, it := range items {
		if q != "" && p.Fields != nil {
			ok := false
			for _, f := range p.Fields(it) {
				if strings.Contains(strings.ToLower(f), q) {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}
		if catActive && p.CategoryOf(it) != cat {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Page es una página de resultados con su metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate corta items en la página pedida.
// - TotalPages = ceil(total/size), mínimo 1 aunque la secuencia esté vacía.
// - page se clampa a [1, TotalPages]: un filtro que encoge la lista nunca
//   deja una página fuera de rango.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
