// Package memory provides in-process mock providers for every capability.
// They back the "mock" provider selection for local development and are
// the workhorses of the handler and integration tests.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"session-gateway/app/domain"
)

// Verifier is an in-memory identity verifier with a programmable token
// table. Unknown tokens are rejected with domain.ErrInvalidToken.
type Verifier struct {
	mu         sync.RWMutex
	identities map[string]domain.VerifiedIdentity
}

// NewVerifier creates an empty mock verifier.
func NewVerifier() *Verifier {
	return &Verifier{
		identities: make(map[string]domain.VerifiedIdentity),
	}
}

// Register maps a raw token to the identity Verify returns for it.
func (v *Verifier) Register(token string, identity domain.VerifiedIdentity) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.identities[token] = identity
}

// Verify resolves a token from the table.
func (v *Verifier) Verify(ctx context.Context, token string) (*domain.VerifiedIdentity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: empty token", domain.ErrInvalidToken)
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	identity, ok := v.identities[token]
	if !ok {
		return nil, fmt.Errorf("%w: unknown token", domain.ErrInvalidToken)
	}

	result := identity
	return &result, nil
}
