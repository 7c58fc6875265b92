// Package authpw is the admin password gate. The stored credential is a
// bcrypt hash, never a plaintext password.
package authpw

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"nexus/admin/internal/store"
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// CredentialStore is the single-slot credential storage, implemented by the
// same backends that hold the content snapshot.
type CredentialStore interface {
	LoadCredential(ctx context.Context) (string, error)
	SaveCredential(ctx context.Context, passwordHash string) error
}

type Service struct {
	store CredentialStore
}

func NewService(store CredentialStore) *Service {
	return &Service{store: store}
}

// Bootstrap hashes and stores the default password if no credential exists
// yet. Existing credentials are never overwritten.
func (s *Service) Bootstrap(ctx context.Context, defaultPassword string) error {
	_, err := s.store.LoadCredential(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoCredential) {
		return fmt.Errorf("load credential: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.SaveCredential(ctx, string(hash)); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

// Verify checks a login attempt against the stored hash.
func (s *Service) Verify(ctx context.Context, password string) error {
	hash, err := s.store.LoadCredential(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// Change replaces the credential after verifying the current password and
// that the confirmation matches.
func (s *Service) Change(ctx context.Context, current, next, confirm string) error {
	if err := s.Verify(ctx, current); err != nil {
		return err
	}
	if len(next) < 8 {
		return ErrPasswordTooShort
	}
	if next != confirm {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.SaveCredential(ctx, string(hash)); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}
