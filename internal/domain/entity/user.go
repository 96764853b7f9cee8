// Package entity contains the mutable aggregates of the curriculum domain.
// Constructors enforce structural invariants; mutator methods enforce domain
// rules and bump UpdatedAt. Entities never touch persistence themselves.
package entity

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
)

// Nickname bounds, in runes after trimming.
const (
	NicknameMinLength = 2
	NicknameMaxLength = 30
)

// PasswordVerifier checks a raw password against a stored hash. The concrete
// hasher is injected; the entity never hashes anything itself.
type PasswordVerifier interface {
	Verify(raw, stored string) bool
}

// User is a platform account.
type User struct {
	ID           uuid.UUID
	Email        string
	Nickname     string
	PasswordHash string
	Role         vo.Role
	IsActive     bool
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates the structural invariants and builds a User.
func NewUser(id uuid.UUID, email, nickname, passwordHash string, role vo.Role, isActive, isAdmin bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == uuid.Nil {
		return nil, errs.NewValidationError("id", "id_empty", "user id must not be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.NewValidationError("email", "email_invalid", "email is not a valid address")
	}
	canonical, err := validateNickname(nickname)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "password_hash_empty", "password hash must not be empty")
	}
	if _, err := vo.NewRole(role.String()); err != nil {
		return nil, err
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewValidationError("timestamps", "timestamp_zero", "created_at and updated_at must be set")
	}

	return &User{
		ID:           id,
		Email:        email,
		Nickname:     canonical,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     isActive,
		IsAdmin:      isAdmin,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func validateNickname(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(trimmed)
	if length < NicknameMinLength || length > NicknameMaxLength {
		return "", errs.NewValidationError("nickname", "nickname_length", "nickname must be between 2 and 30 characters")
	}
	return trimmed, nil
}

// ChangeNickname replaces the nickname after validation.
func (u *User) ChangeNickname(newNickname string) error {
	canonical, err := validateNickname(newNickname)
	if err != nil {
		return err
	}
	u.Nickname = canonical
	u.touch()
	return nil
}

// VerifyPassword delegates to the injected verifier.
func (u *User) VerifyPassword(raw string, verifier PasswordVerifier) bool {
	return verifier.Verify(raw, u.PasswordHash)
}

// Withdraw soft-deletes the account. Calling it on an already withdrawn
// account keeps IsActive false and still bumps UpdatedAt.
func (u *User) Withdraw() {
	u.IsActive = false
	u.touch()
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}
