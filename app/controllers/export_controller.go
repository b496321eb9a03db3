package controllers

import (
	"net/http"

	"catatan/app/middleware"
	"catatan/app/models"
	"catatan/app/services"
)

type ExportController struct {
	Notes    *services.NoteService
	Exporter *services.Exporter
}

func NewExportController(notes *services.NoteService, exporter *services.Exporter) *ExportController {
	return &ExportController{Notes: notes, Exporter: exporter}
}

// Download streams the user's notes as a PDF attachment, optionally narrowed
// to one category.
func (c *ExportController) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryAll
	}
	notes, err := c.Notes.List(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	pdf, err := c.Exporter.PDF(notes, category)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="notes.pdf"`)
	_, _ = w.Write(pdf)
}
