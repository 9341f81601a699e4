package domain

// VerifiedIdentity is the normalized claim set produced by an identity
// verifier after a successful remote verification. It is request-scoped
// and never persisted as-is; SubjectID is the stable external identifier
// used to join against the User entity.
type VerifiedIdentity struct {
	SubjectID   string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	PictureURL  string `json:"picture,omitempty"`
}

// Valid reports whether the identity carries the minimum claim set the
// gateway requires downstream.
func (i *VerifiedIdentity) Valid() bool {
	return i != nil && i.SubjectID != ""
}
