package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"school-directory-service/internal/services"

	"go.uber.org/zap"
)

//go:embed templates/index.html
var templateFS embed.FS

type card struct {
	Initial string
	Name    string
	County  string
}

type pageData struct {
	Search  string
	Located bool
	Lat     float64
	Long    float64
	Status  string
	Cards   []card
}

// LoadPageTemplate parses the embedded directory page.
func LoadPageTemplate() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/index.html")
}

// PageHandler renders the directory as an HTML page of school cards.
type PageHandler struct {
	Catalog *services.Catalog
	Tmpl    *template.Template
	Logger  *zap.Logger
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	origin, search, err := parseListQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := pageData{Search: search}
	if origin != nil {
		data.Located = true
		data.Lat = origin.Lat
		data.Long = origin.Long
	}

	status := http.StatusOK
	view, err := h.Catalog.View(origin, search)
	switch {
	case errors.Is(err, services.ErrCatalogLoading):
		data.Status = "Loading schools..."
	case err != nil:
		status, data.Status = viewErrorStatus(err)
		h.Logger.Warn("render directory page", zap.Error(err))
	default:
		data.Cards = make([]card, 0, len(view.Schools))
		for _, s := range view.Schools {
			data.Cards = append(data.Cards, card{
				Initial: s.Initial(),
				Name:    s.Name,
				County:  s.DisplayCounty(),
			})
		}
		if len(data.Cards) == 0 {
			data.Status = "No schools match your search."
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.Tmpl.Execute(w, data); err != nil {
		h.Logger.Warn("execute page template", zap.Error(err))
	}
}
