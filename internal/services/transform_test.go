package services

import (
	"errors"
	"math"
	"math/rand"
	"school-directory-service/internal/domain"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(schools []domain.School) []string {
	out := make([]string, 0, len(schools))
	for _, s := range schools {
		out = append(out, s.Name)
	}
	return out
}

func ids(schools []domain.School) []string {
	out := make([]string, 0, len(schools))
	for _, s := range schools {
		out = append(out, s.ID)
	}
	return out
}

func at(lat, long float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: lat, Long: long}
}

func TestSortKey(t *testing.T) {
	cases := map[string]string{
		"The University of Alpha":   "Alpha",
		"University of Beta":        "Beta",
		"University of the Gamma":   "Gamma",
		"the college of Delta":      "Delta",
		"THE UNIVERSITY OF EPSILON": "EPSILON",
		"Beta College":              "Beta College",
		"  Ohio State University ":  "Ohio State University",
		"Harvard University of Law": "Harvard University of Law",
	}

	for name, want := range cases {
		if got := SortKey(name); got != want {
			t.Errorf("SortKey(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSortAlphabeticallyStripsPrefixes(t *testing.T) {
	in := []domain.School{
		{ID: "1", Name: "University of the Gamma"},
		{ID: "2", Name: "Beta College"},
		{ID: "3", Name: "The University of Alpha"},
	}
	original := slices.Clone(in)

	got, err := SortAlphabetically(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"The University of Alpha", "Beta College", "University of the Gamma"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(original, in); diff != "" {
		t.Fatalf("input was mutated (-want +got):\n%s", diff)
	}
}

func TestSortAlphabeticallyIsStable(t *testing.T) {
	in := []domain.School{
		{ID: "a", Name: "University of Omega"},
		{ID: "b", Name: "Omega"},
		{ID: "c", Name: "The College of Omega"},
	}

	got, err := SortAlphabetically(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids(got)); diff != "" {
		t.Fatalf("equal keys reordered (-want +got):\n%s", diff)
	}
}

func TestSortAlphabeticallyMalformedRecord(t *testing.T) {
	_, err := SortAlphabetically([]domain.School{{ID: "1", Name: "Acme"}, {ID: "2"}})
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("err = %v, want ErrMalformedRecord", err)
	}
}

func TestSortAlphabeticallyEmpty(t *testing.T) {
	got, err := SortAlphabetically(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %d", len(got))
	}
}

func TestSortByDistanceOrdersByProximity(t *testing.T) {
	in := []domain.School{
		{ID: "one", Name: "One", Coordinates: at(0, 1)},
		{ID: "five", Name: "Five", Coordinates: at(0, 5)},
		{ID: "tenth", Name: "Tenth", Coordinates: at(0, 0.1)},
	}
	original := slices.Clone(in)

	got := SortByDistance(domain.Coordinates{}, in)

	if diff := cmp.Diff([]string{"tenth", "one", "five"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original, in); diff != "" {
		t.Fatalf("input was mutated (-want +got):\n%s", diff)
	}
}

func TestSortByDistanceMissingCoordinatesLast(t *testing.T) {
	in := []domain.School{
		{ID: "nowhere-1", Name: "Nowhere"},
		{ID: "far", Name: "Far", Coordinates: at(10, 10)},
		{ID: "nowhere-2", Name: "Elsewhere"},
		{ID: "near", Name: "Near", Coordinates: at(1, 1)},
	}

	got := SortByDistance(domain.Coordinates{}, in)

	if diff := cmp.Diff([]string{"near", "far", "nowhere-1", "nowhere-2"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByDistanceTiesKeepInputOrder(t *testing.T) {
	in := []domain.School{
		{ID: "east", Coordinates: at(0, 1)},
		{ID: "west", Coordinates: at(0, -1)},
		{ID: "north", Coordinates: at(1, 0)},
	}

	got := SortByDistance(domain.Coordinates{}, in)
	if diff := cmp.Diff([]string{"east", "west", "north"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestHaversine(t *testing.T) {
	// One degree of longitude on the equator.
	got := Haversine(domain.Coordinates{}, domain.Coordinates{Lat: 0, Long: 1})
	if got < 111.1 || got > 111.3 {
		t.Fatalf("Haversine = %f km, want ~111.19", got)
	}

	if d := Haversine(domain.Coordinates{Lat: 33.4, Long: -112}, domain.Coordinates{Lat: 33.4, Long: -112}); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
}

func TestHaversineAntipodesAreFinite(t *testing.T) {
	halfCircumference := math.Pi * earthRadiusKm
	for lat := -90.0; lat <= 90; lat += 0.37 {
		for long := -180.0; long <= 0; long += 1.3 {
			a := domain.Coordinates{Lat: lat, Long: long}
			b := domain.Coordinates{Lat: -lat, Long: long + 180}
			got := Haversine(a, b)
			if math.IsNaN(got) || math.Abs(got-halfCircumference) > 0.01 {
				t.Fatalf("Haversine(%v, %v) = %f, want %f", a, b, got, halfCircumference)
			}
		}
	}
}

func TestSortByDistanceAntipodeSortsLast(t *testing.T) {
	origin := domain.Coordinates{Lat: -86.78, Long: -179}
	in := []domain.School{
		{ID: "antipode", Coordinates: at(86.78, 1)},
		{ID: "near", Coordinates: at(-86, -179)},
	}

	got := SortByDistance(origin, in)
	if diff := cmp.Diff([]string{"near", "antipode"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterBySearch(t *testing.T) {
	in := []domain.School{
		{ID: "1", Name: "Ohio State University"},
		{ID: "2", Name: "Acme College"},
	}

	got := FilterBySearch(in, "state")
	if diff := cmp.Diff([]string{"Ohio State University"}, names(got)); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}

	if got := FilterBySearch(in, " state"); len(got) != 1 {
		t.Fatalf("query with leading space matched %d schools, want 1", len(got))
	}
	if got := FilterBySearch(in, "state "); len(got) != 0 {
		t.Fatalf("query is not trimmed; want 0 matches, got %d", len(got))
	}
}

func TestFilterBySearchUnicodeFold(t *testing.T) {
	in := []domain.School{{ID: "1", Name: "ÉCOLE NORMALE"}}
	if got := FilterBySearch(in, "école"); len(got) != 1 {
		t.Fatalf("expected case-folded match, got %d", len(got))
	}
}

func TestFilterBySearchEmptyQueryIsIdentity(t *testing.T) {
	in := []domain.School{{ID: "1", Name: "B"}, {ID: "2", Name: "A"}}

	got := FilterBySearch(in, "")
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("identity law violated (-want +got):\n%s", diff)
	}

	got[0].Name = "changed"
	if in[0].Name != "B" {
		t.Fatal("filter output aliases the input")
	}
}

func randomSchools(r *rand.Rand, n int) []domain.School {
	words := []string{"The University of ", "University of the ", "University of ", "The College of", "", "State ", "Ohio ", "acme "}
	out := make([]domain.School, 0, n)
	for i := 0; i < n; i++ {
		s := domain.School{
			ID:   string(rune('A'+i%26)) + string(rune('a'+i/26)),
			Name: words[r.Intn(len(words))] + words[r.Intn(len(words))] + "Campus",
		}
		if r.Intn(4) != 0 {
			s.Coordinates = at(r.Float64()*180-90, r.Float64()*360-180)
		}
		out = append(out, s)
	}
	return out
}

func sortedIDs(schools []domain.School) []string {
	out := ids(schools)
	slices.Sort(out)
	return out
}

func TestTransformationsArePermutations(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		in := randomSchools(r, r.Intn(60))
		want := sortedIDs(in)

		alpha, err := SortAlphabetically(in)
		if err != nil {
			t.Fatalf("round %d: unexpected error: %v", round, err)
		}
		if diff := cmp.Diff(want, sortedIDs(alpha)); diff != "" {
			t.Fatalf("round %d: alphabetical output is not a permutation:\n%s", round, diff)
		}
		for i := 1; i < len(alpha); i++ {
			if SortKey(alpha[i-1].Name) > SortKey(alpha[i].Name) {
				t.Fatalf("round %d: keys out of order at %d", round, i)
			}
		}

		origin := domain.Coordinates{Lat: r.Float64()*180 - 90, Long: r.Float64()*360 - 180}
		byDist := SortByDistance(origin, in)
		if diff := cmp.Diff(want, sortedIDs(byDist)); diff != "" {
			t.Fatalf("round %d: distance output is not a permutation:\n%s", round, diff)
		}

		seenMissing := false
		for i, s := range byDist {
			if !s.HasCoordinates() {
				seenMissing = true
				continue
			}
			if seenMissing {
				t.Fatalf("round %d: ranked school after unranked one at %d", round, i)
			}
			if i > 0 && byDist[i-1].HasCoordinates() &&
				Haversine(origin, *byDist[i-1].Coordinates) > Haversine(origin, *s.Coordinates) {
				t.Fatalf("round %d: distances out of order at %d", round, i)
			}
		}

		q := []string{"", "state", "UNIVERSITY", "campus", "zzz"}[r.Intn(5)]
		once := FilterBySearch(in, q)
		twice := FilterBySearch(once, q)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("round %d: filter is not idempotent for %q:\n%s", round, q, diff)
		}
	}
}
