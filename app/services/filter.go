package services

import (
	"strings"

	"catatan/app/models"
)

// NoteFilter narrows a note list in memory. Active criteria compose by AND;
// the zero value passes everything through.
type NoteFilter struct {
	Category      string // exact match; "" or models.CategoryAll disables
	OnlyFavorites bool
	Query         string // case-insensitive substring of title or content
}

func FilterNotes(notes []models.Note, f NoteFilter) []models.Note {
	q := strings.ToLower(f.Query)
	byCategory := f.Category != "" && f.Category != models.CategoryAll
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if byCategory && n.Category != f.Category {
			continue
		}
		if f.OnlyFavorites && !n.IsFavorite {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(n.Title), q) &&
			!strings.Contains(strings.ToLower(n.Content), q) {
			continue
		}
		out = append(out, n)
	}
	return out
}
