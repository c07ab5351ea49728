package services

import (
	"cmp"
	"math"
	"school-directory-service/internal/domain"
	"slices"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two coordinates in kilometres.
func Haversine(a, b domain.Coordinates) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	deltaLat := degreesToRadians(b.Lat - a.Lat)
	deltaLong := degreesToRadians(b.Long - a.Long)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLong/2)*math.Sin(deltaLong/2)
	// Rounding can push h just outside [0, 1] near antipodes.
	h = math.Min(1, math.Max(0, h))

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// SortByDistance returns a new slice ordered by ascending distance from origin.
//
// Schools without coordinates cannot be ranked and are placed after every
// ranked school, in their input order. Equal distances keep input order.
// The input slice is never modified.
func SortByDistance(origin domain.Coordinates, schools []domain.School) []domain.School {
	type ranked struct {
		km     float64
		school domain.School
	}

	rows := make([]ranked, 0, len(schools))
	unranked := make([]domain.School, 0)
	for _, s := range schools {
		loc, err := s.Location()
		if err != nil {
			unranked = append(unranked, s)
			continue
		}
		rows = append(rows, ranked{km: Haversine(origin, loc), school: s})
	}

	slices.SortStableFunc(rows, func(a, b ranked) int {
		return cmp.Compare(a.km, b.km)
	})

	out := make([]domain.School, 0, len(schools))
	for _, r := range rows {
		out = append(out, r.school)
	}

	return append(out, unranked...)
}
