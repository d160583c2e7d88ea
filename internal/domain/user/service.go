// Package user manages account profile details and password changes.
package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nidhisakhi/backend/internal/auth"
	"github.com/nidhisakhi/backend/internal/db"
)

const DateLayout = "2006-01-02"

var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrPasswordRequired = errors.New("current password is required")
)

type Repository interface {
	GetUserByID(ctx context.Context, userID string) (*db.User, error)
	UpdateProfile(ctx context.Context, userID string, in db.ProfileUpdate) (*db.User, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
}

// ProfileInput mirrors the update request; nil and empty fields are left
// unchanged.
type ProfileInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Profile(ctx context.Context, userID string) (*db.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*db.User, error) {
	update, err := in.toUpdate()
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateProfile(ctx, userID, update)
}

func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" {
		return ErrPasswordRequired
	}
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, current) {
		return ErrWrongPassword
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(ctx, userID, hash)
}

func (in ProfileInput) toUpdate() (db.ProfileUpdate, error) {
	var out db.ProfileUpdate

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return out, ErrEmptyName
		}
		out.Name = &name
	}
	out.Phone = nonEmpty(in.Phone)
	out.Address = nonEmpty(in.Address)

	if dob := nonEmpty(in.DateOfBirth); dob != nil {
		t, err := time.Parse(DateLayout, *dob)
		if err != nil {
			return out, ErrInvalidDate
		}
		out.DateOfBirth = &t
	}
	return out, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
