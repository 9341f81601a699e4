package port

//go:generate mockgen -source=verifier_port.go -destination=../mocks/mock_verifier_port.go

import (
	"context"

	"session-gateway/app/domain"
)

// IdentityVerifier verifies an externally-issued identity assertion and
// returns the normalized claim set. Verification is pure: it must never
// mutate persisted state. Empty or malformed tokens are rejected with
// domain.ErrInvalidToken before any remote call is attempted.
//
// Implementations retry exactly once, after a fixed backoff, when the
// remote verifier reports a token used before its issuance time (clock
// skew). Any second failure is terminal.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*domain.VerifiedIdentity, error)
}
