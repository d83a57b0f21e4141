package auth

import "github.com/google/uuid"

// Principal is the identity associated with a request.
type Principal interface {
	IsAuthenticated() bool
	UserID() uuid.UUID
}

// principal is the single concrete Principal. The zero value is anonymous.
type principal struct {
	id            uuid.UUID
	authenticated bool
}

func (p principal) IsAuthenticated() bool { return p.authenticated }
func (p principal) UserID() uuid.UUID     { return p.id }

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return principal{}
}

// Authenticated returns a principal for the given user id.
func Authenticated(id uuid.UUID) Principal {
	return principal{id: id, authenticated: true}
}
