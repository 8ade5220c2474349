package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id            uuid.UUID
	name          string
	email         Email
	phone         string
	passwordHash  string
	role          Role
	isActive      bool
	loyaltyPoints int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(name string, email Email, phone, passwordHash string, role Role) (*User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		name:         trimmed,
		email:        email,
		phone:        strings.TrimSpace(phone),
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	phone, passwordHash string,
	role Role,
	isActive bool,
	loyaltyPoints int,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		passwordHash:  passwordHash,
		role:          role,
		isActive:      isActive,
		loyaltyPoints: loyaltyPoints,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Phone() string        { return u.phone }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) LoyaltyPoints() int   { return u.loyaltyPoints }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
