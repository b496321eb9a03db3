package services

import (
	"errors"
	"fmt"

	"catatan/app/apperrors"
	"catatan/app/models"
	"catatan/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func wrapPersistence(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
}

func (s *UserService) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidInput
	}
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(u); err != nil {
		return nil, wrapPersistence(err)
	}
	return u, nil
}

// Login deliberately collapses unknown-username and wrong-password into the
// same error so callers cannot probe for accounts.
func (s *UserService) Login(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrAuthenticationFailed
	}
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAuthenticationFailed
		}
		return nil, wrapPersistence(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrAuthenticationFailed
	}
	return u, nil
}

// ResetPassword overwrites the stored hash given only the username. There is
// no identity verification step; deploy behind something that provides one.
func (s *UserService) ResetPassword(username, newPassword string) error {
	if username == "" || newPassword == "" {
		return apperrors.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	affected, err := s.users.UpdatePasswordHash(username, string(hash))
	if err != nil {
		return wrapPersistence(err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
