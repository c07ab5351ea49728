package services

import (
	"fmt"
	"regexp"
	"school-directory-service/internal/domain"
	"slices"
	"strings"
)

// Institutional prefixes ignored when ordering by name.
// Longer alternatives come first so "University of the X" keys as "X".
var institutionPrefix = regexp.MustCompile(`(?i)^(University of the |The University of |University of |The College of)`)

// SortKey derives the comparison key for a school name.
// At most one leading prefix is removed; the result is whitespace-trimmed.
func SortKey(name string) string {
	return strings.TrimSpace(institutionPrefix.ReplaceAllString(name, ""))
}

// SortAlphabetically returns a new slice ordered by SortKey of each name.
//
// Keys are compared byte-wise. The sort is stable, so schools with equal keys
// keep their input order. The input slice is never modified.
// A school without a name fails the whole call with domain.ErrMalformedRecord.
func SortAlphabetically(schools []domain.School) ([]domain.School, error) {
	type keyed struct {
		key    string
		school domain.School
	}

	rows := make([]keyed, 0, len(schools))
	for i, s := range schools {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("sort alphabetically: index %d: %w", i, err)
		}
		rows = append(rows, keyed{key: SortKey(s.Name), school: s})
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})

	out := make([]domain.School, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.school)
	}

	return out, nil
}
