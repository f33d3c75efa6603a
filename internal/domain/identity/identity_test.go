package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, Authorize(owner, owner))
	assert.ErrorIs(t, Authorize(uuid.New(), owner), ErrNotOwner)
}
