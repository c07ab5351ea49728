package dto

import "time"

type CoordinatesResponse struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type SchoolResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Type          string               `json:"type"`
	ZipCode       string               `json:"zipCode"`
	Enrolled      int                  `json:"enrolled"`
	Applicants    int                  `json:"applicants"`
	Admitted      int                  `json:"admitted"`
	Tuition       int                  `json:"tuition"`
	HighestDegree string               `json:"highestDegree"`
	County        string               `json:"county"`
	DisplayCounty string               `json:"displayCounty"`
	State         string               `json:"state"`
	Coordinates   *CoordinatesResponse `json:"coordinates"`
	DistanceKm    *float64             `json:"distanceKm,omitempty"`
}

type ListSchoolsResponse struct {
	Strategy string           `json:"strategy"`
	Total    int              `json:"total"`
	Count    int              `json:"count"`
	LoadedAt time.Time        `json:"loadedAt"`
	Schools  []SchoolResponse `json:"schools"`
}

type ReloadResponse struct {
	Status  string `json:"status"`
	Schools int    `json:"schools"`
}
