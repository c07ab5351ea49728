package api

import (
	"fmt"
	"net/http"
	"school-directory-service/internal/api/handlers"
	"school-directory-service/internal/services"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(catalog *services.Catalog, logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := handlers.LoadPageTemplate()
	if err != nil {
		return nil, fmt.Errorf("new router: load page template: %w", err)
	}

	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Logger: logger}
	schoolHandler := &handlers.SchoolHandler{Catalog: catalog, Logger: logger}
	pageHandler := &handlers.PageHandler{Catalog: catalog, Tmpl: tmpl, Logger: logger}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/schools", schoolHandler.List)
	mux.HandleFunc("/schools/reload", schoolHandler.Reload)
	mux.HandleFunc("/", pageHandler.Index)

	// Request ids must be assigned before the access log reads them.
	return requestIDMiddleware(loggingMiddleware(logger, mux)), nil
}
