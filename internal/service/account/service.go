// Package account implements the account service rules: unique usernames,
// minimum password length on registration, and exact-match login.
package account

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/social"
	"github.com/tinoosan/social/internal/validation"
)

type Service interface {
	Register(ctx context.Context, candidate social.Account) (social.Account, error)
	Login(ctx context.Context, credentials social.Account) (social.Account, error)
}

type service struct {
	store Store
}

func New(store Store) Service { return &service{store: store} }

type registration struct {
	Username string `validate:"required"`
	Password string `validate:"password"`
}

// ValidateRegistration checks the field rules for a new account.
func ValidateRegistration(a social.Account) error {
	return validation.Struct(registration{Username: a.Username, Password: a.Password})
}

// Register persists a new account. A taken username is reported as
// errs.ErrConflict before any field rule is evaluated.
func (s *service) Register(ctx context.Context, candidate social.Account) (social.Account, error) {
	exists, err := s.store.AccountExists(ctx, candidate.Username)
	if err != nil {
		return social.Account{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return social.Account{}, errs.ErrConflict
	}
	if err := ValidateRegistration(candidate); err != nil {
		return social.Account{}, err
	}
	candidate.ID = uuid.Nil
	created, err := s.store.InsertAccount(ctx, candidate)
	if err != nil {
		// a concurrent registration may win between the check and the insert
		if errors.Is(err, errs.ErrConflict) {
			return social.Account{}, errs.ErrConflict
		}
		return social.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return created, nil
}

// Login returns the stored account when both username and password match exactly.
func (s *service) Login(ctx context.Context, credentials social.Account) (social.Account, error) {
	acc, err := s.store.FindAccountByUsername(ctx, credentials.Username)
	if errors.Is(err, errs.ErrNotFound) {
		return social.Account{}, errs.ErrUnauthorized
	}
	if err != nil {
		return social.Account{}, fmt.Errorf("find account: %w", err)
	}
	if acc.Username != credentials.Username || !equal(acc.Password, credentials.Password) {
		return social.Account{}, errs.ErrUnauthorized
	}
	return acc, nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
