package domain

import "time"

// SessionClaims is the claim set carried by the stateless session
// credential. The expiry is fixed at issuance; there is no server-side
// revocation list, so logout only clears the client-side cookie.
type SessionClaims struct {
	SubjectID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session has passed its fixed expiry.
func (c *SessionClaims) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// ValidationResult is the outcome of a successful token validation. It is
// returned to the client along with the session cookie. User may be nil
// when reconciliation was skipped because the persistent store failed;
// the session is still issued from the verified identity alone.
type ValidationResult struct {
	Identity     *VerifiedIdentity
	User         *User
	Message      string
	IsNewUser    bool
	SessionToken string
	ExpiresAt    time.Time
}
