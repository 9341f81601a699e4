package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"session-gateway/app/domain"
	"session-gateway/app/port"
)

// UserGateway reconciles verified identities against the users collection.
// The store itself is resolved through the provider container on every
// call, so a deployment that never configures a store only fails here,
// where the failure is recoverable by policy.
type UserGateway struct {
	providers port.Providers
	logger    *slog.Logger
	now       func() time.Time
}

// NewUserGateway creates a new UserGateway instance
func NewUserGateway(providers port.Providers, logger *slog.Logger) *UserGateway {
	return &UserGateway{
		providers: providers,
		logger:    logger,
		now:       time.Now,
	}
}

// Reconcile looks the user up by external subject id and either refreshes
// the profile fields or inserts a new record. The read-then-write has a
// race window for brand-new subjects under concurrent requests; the unique
// index on the join key is the backstop, and the duplicate-key failure it
// produces propagates to the caller's isolation policy.
func (g *UserGateway) Reconcile(ctx context.Context, identity *domain.VerifiedIdentity) (*domain.User, bool, error) {
	store, err := g.providers.PersistentStore(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("resolve persistent store: %w", err)
	}

	doc, err := port.FindUserBySubject(ctx, store, identity.SubjectID)
	if err != nil {
		return nil, false, fmt.Errorf("lookup user %s: %w", identity.SubjectID, err)
	}

	now := g.now().UTC()

	if doc == nil {
		user, err := domain.NewUser(identity, now)
		if err != nil {
			return nil, false, fmt.Errorf("build user: %w", err)
		}

		if _, err := store.InsertOne(ctx, port.UsersCollection, userToDocument(user)); err != nil {
			return nil, false, fmt.Errorf("insert user %s: %w", identity.SubjectID, err)
		}

		g.logger.Info("user created",
			"subject_id", user.ExternalSubjectID,
			"user_id", user.ID.String())
		return user, true, nil
	}

	user := userFromDocument(doc)
	user.RefreshProfile(identity, now)

	// Partial patch only: created_at and role must survive, along with any
	// fields written out-of-band.
	patch := port.Document{
		"email":         user.Email,
		"display_name":  user.DisplayName,
		"picture_url":   user.PictureURL,
		"last_login_at": user.LastLoginAt,
	}
	if _, err := store.UpdateOne(ctx, port.UsersCollection,
		port.Document{"external_subject_id": identity.SubjectID}, patch); err != nil {
		return nil, false, fmt.Errorf("update user %s: %w", identity.SubjectID, err)
	}

	g.logger.Debug("user profile refreshed", "subject_id", user.ExternalSubjectID)
	return user, false, nil
}

func userToDocument(u *domain.User) port.Document {
	return port.Document{
		"_id":                 u.ID.String(),
		"external_subject_id": u.ExternalSubjectID,
		"email":               u.Email,
		"display_name":        u.DisplayName,
		"picture_url":         u.PictureURL,
		"role":                string(u.Role),
		"created_at":          u.CreatedAt,
		"last_login_at":       u.LastLoginAt,
	}
}

func userFromDocument(doc port.Document) *domain.User {
	user := &domain.User{
		ExternalSubjectID: stringField(doc, "external_subject_id"),
		Email:             stringField(doc, "email"),
		DisplayName:       stringField(doc, "display_name"),
		PictureURL:        stringField(doc, "picture_url"),
		Role:              domain.UserRole(stringField(doc, "role")),
		CreatedAt:         timeField(doc, "created_at"),
		LastLoginAt:       timeField(doc, "last_login_at"),
	}
	if id, err := uuid.Parse(stringField(doc, "_id")); err == nil {
		user.ID = id
	}
	if user.Role == "" {
		user.Role = domain.UserRoleUser
	}
	return user
}

func stringField(doc port.Document, key string) string {
	s, _ := doc[key].(string)
	return s
}

func timeField(doc port.Document, key string) time.Time {
	switch v := doc[key].(type) {
	case time.Time:
		return v
	case interface{ Time() time.Time }:
		// bson.DateTime and friends.
		return v.Time()
	default:
		return time.Time{}
	}
}
