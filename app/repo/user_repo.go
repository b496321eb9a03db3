package repo

import (
	"catatan/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := withRetry(func() error {
		return r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	})
	return count, err
}

func (r *UserRepository) Create(u *models.User) error {
	return withRetry(func() error { return r.db.Create(u).Error })
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	err := withRetry(func() error {
		return r.db.Where("username = ?", username).First(&u).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePasswordHash overwrites the hash for the named account and reports how
// many rows matched.
func (r *UserRepository) UpdatePasswordHash(username, hash string) (int64, error) {
	var affected int64
	err := withRetry(func() error {
		res := r.db.Model(&models.User{}).Where("username = ?", username).Update("password_hash", hash)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
