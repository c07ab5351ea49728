package domain

// Immutable geographic coordinates in decimal degrees.
// Range is not validated; out-of-range values yield meaningless but finite distances.
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}
