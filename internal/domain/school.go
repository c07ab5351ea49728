package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// A school has no coordinates and cannot be ranked by distance.
	// Such schools are placed after every ranked school rather than failing.
	ErrMissingCoordinate = errors.New("missing coordinate")

	// A school has no display name. This is a caller contract violation.
	ErrMalformedRecord = errors.New("malformed record")
)

// Represents a single entry of the school directory.
// Schools are values: transformations copy them and never modify fields.
// Coordinates is nil when the directory carries no geographic data for the school.
type School struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          string       `json:"type"`
	ZipCode       string       `json:"zipCode"`
	Enrolled      int          `json:"enrolled"`
	Applicants    int          `json:"applicants"`
	Admitted      int          `json:"admitted"`
	Tuition       int          `json:"tuition"`
	HighestDegree string       `json:"highestDegree"`
	County        string       `json:"county"`
	State         string       `json:"state"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
}

// Report whether the school carries a usable coordinate.
func (s School) HasCoordinates() bool { return s.Coordinates != nil }

// Location returns the school's coordinate or ErrMissingCoordinate.
func (s School) Location() (Coordinates, error) {
	if s.Coordinates == nil {
		return Coordinates{}, fmt.Errorf("school id=%q: %w", s.ID, ErrMissingCoordinate)
	}
	return *s.Coordinates, nil
}

// Validate checks the fields every transformation relies on.
func (s School) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("school id=%q: name is empty: %w", s.ID, ErrMalformedRecord)
	}
	return nil
}

var countySuffixes = strings.NewReplacer(" County", "", " Parish", "", " city", "")

// DisplayCounty returns the county without its administrative suffix,
// e.g. "Maricopa County" -> "Maricopa", "Orleans Parish" -> "Orleans".
func (s School) DisplayCounty() string {
	return countySuffixes.Replace(s.County)
}

// Initial returns the first character of the name, or "" for an unnamed school.
func (s School) Initial() string {
	r, size := utf8.DecodeRuneInString(s.Name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
