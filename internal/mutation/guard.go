package mutation

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Ownership evaluates the single-owner rule. A nil owner means the row does
// not exist.
func Ownership(owner *uuid.UUID, requester uuid.UUID) domain.Status {
	switch {
	case owner == nil:
		return domain.StatusNotFound
	case requester == uuid.Nil || *owner != requester:
		return domain.StatusUnauthorized
	}
	return domain.StatusSuccess
}

// CheckOwner is Ownership for an existing row, as an error.
func CheckOwner(owner, requester uuid.UUID) error {
	if Ownership(&owner, requester) != domain.StatusSuccess {
		return domain.Reject(domain.StatusUnauthorized, "not the owner")
	}
	return nil
}

// CheckEdge applies the role and state rules of a friend edge transition.
func CheckEdge(edge *domain.FriendEdge, requester uuid.UUID, action domain.EdgeAction) error {
	if edge == nil {
		return domain.Reject(domain.StatusNotFound, "friend edge not found")
	}
	if !edge.Involves(requester) {
		return domain.Reject(domain.StatusUnauthorized, "not a party of this edge")
	}

	switch action {
	case domain.EdgeAccept, domain.EdgeReject:
		if requester != edge.ToID {
			return domain.Reject(domain.StatusUnauthorized, "only the recipient can "+action.String())
		}
		if edge.Status != domain.EdgePending {
			return domain.Reject(domain.StatusAlreadyProcessed, "request is already "+edge.Status.String())
		}
	case domain.EdgeCancel:
		if edge.IsSelf() {
			return domain.Reject(domain.StatusSelfReference, "the self edge cannot be cancelled")
		}
		if requester != edge.FromID {
			return domain.Reject(domain.StatusUnauthorized, "only the sender can cancel")
		}
		if edge.Status != domain.EdgePending {
			return domain.Reject(domain.StatusAlreadyProcessed, "request is already "+edge.Status.String())
		}
	case domain.EdgeRemove:
		if edge.IsSelf() {
			return domain.Reject(domain.StatusSelfReference, "the self edge cannot be removed")
		}
		if edge.Status != domain.EdgeAccepted {
			return domain.Reject(domain.StatusAlreadyProcessed, "edge is "+edge.Status.String())
		}
	default:
		return domain.NewValidationError("action", "unknown action")
	}
	return nil
}
