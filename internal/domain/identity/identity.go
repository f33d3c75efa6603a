package identity

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotOwner = errors.New("acting user does not own this resource")

// Identity carries the acting user's denormalized attributes. Name and
// Avatar are snapshotted into comments and posts at write time and are
// not kept in sync with later profile changes.
type Identity struct {
	ID     uuid.UUID
	Name   string
	Avatar string
}

// Authorize succeeds iff the acting user is the owner of the resource.
// Every owner-scoped mutation goes through this check before touching
// the aggregate.
func Authorize(actingID, ownerID uuid.UUID) error {
	if actingID != ownerID {
		return ErrNotOwner
	}
	return nil
}
