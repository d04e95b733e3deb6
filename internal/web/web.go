package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/prabhatsn1/trameapp/internal/pkg/pkgrouter"
)

//go:embed templates/index.html
var templateFS embed.FS

type pageData struct {
	VisualizerURL string
}

// Register serves the upload page at the site root.
func Register(r *pkgrouter.Router, visualizerURL string) error {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return err
	}

	data := pageData{VisualizerURL: visualizerURL}

	r.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			slog.ErrorContext(req.Context(), "failed to render upload page", "error", err)
		}
	}))

	return nil
}
