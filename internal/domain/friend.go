package domain

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FriendEdge is a directed friend request between two accounts.
type FriendEdge struct {
	ID           uuid.UUID
	FromID       uuid.UUID
	ToID         uuid.UUID
	FromUsername string
	ToUsername   string
	Status       EdgeStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSelf reports whether the edge is the bootstrap edge of a single account.
func (e *FriendEdge) IsSelf() bool {
	return e.FromID == e.ToID
}

// Involves reports whether id is either party of the edge.
func (e *FriendEdge) Involves(id uuid.UUID) bool {
	return e.FromID == id || e.ToID == id
}

// Other returns the party that is not id.
func (e *FriendEdge) Other(id uuid.UUID) uuid.UUID {
	if e.FromID == id {
		return e.ToID
	}
	return e.FromID
}

// CanonicalPair orders two account ids so that (a, b) and (b, a) map to the
// same pair.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}

// PairLockKey names the lock that serializes edge creation for a pair.
func PairLockKey(a, b uuid.UUID) string {
	lo, hi := CanonicalPair(a, b)
	return fmt.Sprintf("friend_lock_%s_%s", lo, hi)
}

// Target returns the status an action moves an edge to. Remove and cancel
// delete the edge and have no target status.
func (a EdgeAction) Target() (EdgeStatus, bool) {
	switch a {
	case EdgeAccept:
		return EdgeAccepted, true
	case EdgeReject:
		return EdgeRejected, true
	}
	return "", false
}
