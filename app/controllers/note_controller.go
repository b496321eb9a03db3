package controllers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"catatan/app/apperrors"
	"catatan/app/dto"
	"catatan/app/middleware"
	"catatan/app/services"
)

type NoteController struct{ Notes *services.NoteService }

func NewNoteController(notes *services.NoteService) *NoteController {
	return &NoteController{Notes: notes}
}

// Collection handles GET (list + filter) and POST (create) on /notes.
func (c *NoteController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c *NoteController) list(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	notes, err := c.Notes.List(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	filter := services.NoteFilter{
		Category:      q.Get("category"),
		OnlyFavorites: q.Get("favorites") == "true",
		Query:         q.Get("q"),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(services.FilterNotes(notes, filter))
}

func (c *NoteController) create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var (
		req   dto.NoteRequest
		image []byte
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(4 << 20); err != nil {
			writeError(w, apperrors.ErrInvalidInput)
			return
		}
		req.Title = r.FormValue("title")
		req.Category = r.FormValue("category")
		req.Color = r.FormValue("color")
		req.Content = r.FormValue("content")
		if file, _, err := r.FormFile("image"); err == nil {
			defer file.Close()
			image, err = io.ReadAll(io.LimitReader(file, services.MaxImageBytes+1))
			if err != nil {
				writeError(w, err)
				return
			}
		}
	} else {
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Image != "" {
			raw, err := base64.StdEncoding.DecodeString(req.Image)
			if err != nil {
				writeError(w, apperrors.ErrInvalidInput)
				return
			}
			image = raw
		}
	}

	note, err := c.Notes.Create(claims.UserID, req.Title, req.Category, req.Color, req.Content, image)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(note)
}

func (c *NoteController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeError(w, apperrors.ErrInvalidInput)
		return
	}
	if err := c.Notes.Delete(claims.UserID, uint(id)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *NoteController) Pin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	var req dto.PinRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == 0 {
		writeError(w, apperrors.ErrInvalidInput)
		return
	}
	if err := c.Notes.SetFavorite(claims.UserID, req.ID, req.Favorite); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
