package services

import (
	"regexp"

	"catatan/app/apperrors"
	"catatan/app/models"
	"catatan/app/repo"
)

// DefaultColor matches the color picker default in the original form.
const DefaultColor = "#FFF9C4"

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type NoteService struct{ notes *repo.NoteRepository }

func NewNoteService(notes *repo.NoteRepository) *NoteService { return &NoteService{notes: notes} }

// Create validates and inserts a note for userID. Notes start unpinned;
// created_at is assigned by the store.
func (s *NoteService) Create(userID uint, title, category, color, content string, image []byte) (*models.Note, error) {
	if title == "" || content == "" {
		return nil, apperrors.ErrInvalidInput
	}
	if !models.ValidCategory(category) {
		return nil, apperrors.ErrInvalidInput
	}
	if color == "" {
		color = DefaultColor
	}
	if !hexColorRe.MatchString(color) {
		return nil, apperrors.ErrInvalidInput
	}
	encoded := ""
	if len(image) > 0 {
		var err error
		encoded, err = EncodeImage(image)
		if err != nil {
			return nil, err
		}
	}
	n := &models.Note{
		UserID:   userID,
		Title:    title,
		Category: category,
		Color:    color,
		Content:  content,
		Image:    encoded,
	}
	if err := s.notes.Create(n); err != nil {
		return nil, wrapPersistence(err)
	}
	return n, nil
}

func (s *NoteService) List(userID uint) ([]models.Note, error) {
	notes, err := s.notes.ListByUser(userID)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return notes, nil
}

// Delete is an idempotent no-op when the note is missing or owned by another
// user; ownership is enforced in the statement itself.
func (s *NoteService) Delete(userID, noteID uint) error {
	if _, err := s.notes.DeleteOwned(userID, noteID); err != nil {
		return wrapPersistence(err)
	}
	return nil
}

// SetFavorite pins or unpins with the same ownership and no-op semantics as
// Delete.
func (s *NoteService) SetFavorite(userID, noteID uint, favorite bool) error {
	if _, err := s.notes.SetFavoriteOwned(userID, noteID, favorite); err != nil {
		return wrapPersistence(err)
	}
	return nil
}
