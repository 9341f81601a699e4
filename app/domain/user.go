package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// User represents a persisted user synchronized from a verified identity.
// ExternalSubjectID is the canonical join key: unique, immutable, set once
// at creation. Email and the profile fields are refreshed on every
// successful validation; CreatedAt and Role are never touched by the sync.
type User struct {
	ID                uuid.UUID `bson:"_id" json:"id"`
	ExternalSubjectID string    `bson:"external_subject_id" json:"external_subject_id"`
	Email             string    `bson:"email" json:"email"`
	DisplayName       string    `bson:"display_name" json:"display_name"`
	PictureURL        string    `bson:"picture_url" json:"picture_url,omitempty"`
	Role              UserRole  `bson:"role" json:"role"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	LastLoginAt       time.Time `bson:"last_login_at" json:"last_login_at"`
}

// NewUser creates a new user from a verified identity with validation.
func NewUser(identity *VerifiedIdentity, now time.Time) (*User, error) {
	if !identity.Valid() {
		return nil, fmt.Errorf("subject id is required")
	}

	if identity.Email != "" {
		if _, err := mail.ParseAddress(identity.Email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
	}

	return &User{
		ID:                uuid.New(),
		ExternalSubjectID: identity.SubjectID,
		Email:             identity.Email,
		DisplayName:       identity.DisplayName,
		PictureURL:        identity.PictureURL,
		Role:              UserRoleUser,
		CreatedAt:         now,
		LastLoginAt:       now,
	}, nil
}

// RefreshProfile applies the upstream profile fields and records the login.
// It intentionally leaves ID, ExternalSubjectID, Role and CreatedAt alone.
func (u *User) RefreshProfile(identity *VerifiedIdentity, now time.Time) {
	u.Email = identity.Email
	u.DisplayName = identity.DisplayName
	u.PictureURL = identity.PictureURL
	u.LastLoginAt = now
}

// IsAdmin returns true if the user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
