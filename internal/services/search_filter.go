package services

import (
	"school-directory-service/internal/domain"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// FilterBySearch keeps the schools whose name contains query, ignoring case.
//
// Case folding is Unicode-aware. The query is used verbatim (no trimming), and an
// empty query keeps every school. The result is always a new slice.
func FilterBySearch(schools []domain.School, query string) []domain.School {
	if query == "" {
		return slices.Clone(schools)
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]domain.School, 0, len(schools))
	for _, s := range schools {
		if strings.Contains(fold.String(s.Name), needle) {
			out = append(out, s)
		}
	}

	return out
}
