package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"school-directory-service/internal/domain"
	"strconv"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, msg string) {
	writeJSON(w, r, logger, status, map[string]string{"error": msg})
}

var errBadLocation = errors.New("lat and long must be provided together as decimal degrees")

// parseListQuery reads the reference location and search text from the URL.
// The location is nil when neither lat nor long is given.
func parseListQuery(r *http.Request) (*domain.Coordinates, string, error) {
	q := r.URL.Query()
	search := q.Get("search")

	latStr, longStr := q.Get("lat"), q.Get("long")
	if latStr == "" && longStr == "" {
		return nil, search, nil
	}
	if latStr == "" || longStr == "" {
		return nil, "", errBadLocation
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, "", fmt.Errorf("%w: lat: %v", errBadLocation, err)
	}
	long, err := strconv.ParseFloat(longStr, 64)
	if err != nil {
		return nil, "", fmt.Errorf("%w: long: %v", errBadLocation, err)
	}

	if !isFinite(lat) || !isFinite(long) {
		return nil, "", errBadLocation
	}

	return &domain.Coordinates{Lat: lat, Long: long}, search, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
