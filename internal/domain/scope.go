package domain

import "github.com/google/uuid"

// Scope describes what a committed mutation touched. The cache layer turns
// scopes into keys.
type Scope struct {
	Kind     ResourceKind
	OwnerID  uuid.UUID
	Activity *ActivityRef
	// Extra lists additional accounts whose derived views include the owner's
	// data, such as both parties of a friend edge.
	Extra []uuid.UUID
}

// ScopeFor builds a Scope for owner-level invalidation.
func ScopeFor(kind ResourceKind, owner uuid.UUID, extra ...uuid.UUID) Scope {
	return Scope{Kind: kind, OwnerID: owner, Extra: extra}
}

// ActivityScope builds a Scope for a change to or under an activity.
func ActivityScope(kind ResourceKind, owner uuid.UUID, ref ActivityRef) Scope {
	return Scope{Kind: kind, OwnerID: owner, Activity: &ref}
}
