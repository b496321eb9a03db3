package repo

import (
	"catatan/app/models"

	"gorm.io/gorm"
)

type NoteRepository struct{ db *gorm.DB }

func NewNoteRepository(db *gorm.DB) *NoteRepository { return &NoteRepository{db: db} }

func (r *NoteRepository) Create(n *models.Note) error {
	return withRetry(func() error { return r.db.Create(n).Error })
}

// ListByUser returns the user's notes pinned-first, newest-first. The id
// tie-break keeps ordering stable when created_at collides.
func (r *NoteRepository) ListByUser(userID uint) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	err := withRetry(func() error {
		return r.db.Where("user_id = ?", userID).
			Order("is_favorite DESC").
			Order("created_at DESC").
			Order("id DESC").
			Find(&notes).Error
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// DeleteOwned removes a note only when it belongs to userID. Zero affected
// rows means the note does not exist or is someone else's.
func (r *NoteRepository) DeleteOwned(userID, noteID uint) (int64, error) {
	var affected int64
	err := withRetry(func() error {
		res := r.db.Where("id = ? AND user_id = ?", noteID, userID).Delete(&models.Note{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

// SetFavoriteOwned flips the pin flag with the same ownership scoping as
// DeleteOwned.
func (r *NoteRepository) SetFavoriteOwned(userID, noteID uint, favorite bool) (int64, error) {
	var affected int64
	err := withRetry(func() error {
		res := r.db.Model(&models.Note{}).
			Where("id = ? AND user_id = ?", noteID, userID).
			Update("is_favorite", favorite)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
