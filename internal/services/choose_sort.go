package services

import (
	"fmt"
	"school-directory-service/internal/domain"
)

// Strategy names the ordering applied to a school list.
type Strategy string

const (
	StrategyAlphabetical Strategy = "alphabetical"
	StrategyDistance     Strategy = "distance"
)

// SelectStrategy picks the ordering from the reference location alone:
// no location orders by name, a known location orders by distance.
func SelectStrategy(origin *domain.Coordinates) Strategy {
	if origin == nil {
		return StrategyAlphabetical
	}
	return StrategyDistance
}

// ChooseSort orders schools with the strategy selected for origin.
func ChooseSort(schools []domain.School, origin *domain.Coordinates) ([]domain.School, Strategy, error) {
	strategy := SelectStrategy(origin)

	if strategy == StrategyDistance {
		return SortByDistance(*origin, schools), strategy, nil
	}

	sorted, err := SortAlphabetically(schools)
	if err != nil {
		return nil, strategy, fmt.Errorf("choose sort: %w", err)
	}
	return sorted, strategy, nil
}

// Arrange runs the full presentation pipeline: order, then filter by query.
// Callers re-run it whenever the reference location or the query changes.
func Arrange(schools []domain.School, origin *domain.Coordinates, query string) ([]domain.School, Strategy, error) {
	sorted, strategy, err := ChooseSort(schools, origin)
	if err != nil {
		return nil, strategy, fmt.Errorf("arrange: %w", err)
	}

	return FilterBySearch(sorted, query), strategy, nil
}
