package handlers

import (
	"errors"
	"net/http"
	"school-directory-service/internal/api/dto"
	"school-directory-service/internal/domain"
	"school-directory-service/internal/services"

	"go.uber.org/zap"
)

// SchoolHandler exposes the arranged school directory.
type SchoolHandler struct {
	Catalog *services.Catalog
	Logger  *zap.Logger
}

// List returns the directory ordered for the caller's location and filtered by search.
func (h *SchoolHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	origin, search, err := parseListQuery(r)
	if err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.Catalog.View(origin, search)
	if err != nil {
		status, msg := viewErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("arrange schools failed", zap.Error(err))
		}
		writeError(w, r, h.Logger, status, msg)
		return
	}

	res := dto.ListSchoolsResponse{
		Strategy: string(view.Strategy),
		Total:    view.Total,
		Count:    len(view.Schools),
		LoadedAt: view.LoadedAt,
		Schools:  make([]dto.SchoolResponse, 0, len(view.Schools)),
	}
	for _, s := range view.Schools {
		res.Schools = append(res.Schools, toSchoolResponse(s, origin))
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

// Reload refetches the directory from its source.
func (h *SchoolHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := h.Catalog.Load(r.Context()); err != nil {
		h.Logger.Error("reload school directory failed", zap.Error(err))
		writeError(w, r, h.Logger, http.StatusBadGateway, "school directory source failed")
		return
	}

	view, err := h.Catalog.View(nil, "")
	if err != nil {
		status, msg := viewErrorStatus(err)
		h.Logger.Error("reload school directory: view failed", zap.Int("status", status), zap.Error(err))
		writeError(w, r, h.Logger, status, msg)
		return
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.ReloadResponse{Status: "reloaded", Schools: view.Total})
}

func viewErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrCatalogLoading):
		return http.StatusServiceUnavailable, "school directory is loading"
	case errors.Is(err, services.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "school directory is unavailable"
	case errors.Is(err, domain.ErrMalformedRecord):
		return http.StatusBadGateway, "school directory contains malformed records"
	}
	return http.StatusInternalServerError, "internal server error"
}

func toSchoolResponse(s domain.School, origin *domain.Coordinates) dto.SchoolResponse {
	res := dto.SchoolResponse{
		ID:            s.ID,
		Name:          s.Name,
		Type:          s.Type,
		ZipCode:       s.ZipCode,
		Enrolled:      s.Enrolled,
		Applicants:    s.Applicants,
		Admitted:      s.Admitted,
		Tuition:       s.Tuition,
		HighestDegree: s.HighestDegree,
		County:        s.County,
		DisplayCounty: s.DisplayCounty(),
		State:         s.State,
	}

	if s.Coordinates != nil {
		res.Coordinates = &dto.CoordinatesResponse{Lat: s.Coordinates.Lat, Long: s.Coordinates.Long}
		if origin != nil {
			km := services.Haversine(*origin, *s.Coordinates)
			res.DistanceKm = &km
		}
	}

	return res
}
