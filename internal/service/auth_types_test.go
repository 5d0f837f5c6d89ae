package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACPasswordHasher(t *testing.T) {
	hasher := HMACPasswordHasher{Salt: []byte("shared-salt")}

	digest := hasher.Hash("greenthumb1")
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, hasher.Hash("greenthumb1"))

	assert.True(t, hasher.Verify("greenthumb1", digest))
	assert.False(t, hasher.Verify("greenthumb2", digest))
}

func TestHMACPasswordHasherSharedSaltCollision(t *testing.T) {
	// One shared salt means equal passwords collide across users.
	hasher := HMACPasswordHasher{Salt: []byte("shared-salt")}
	assert.Equal(t, hasher.Hash("samepassword"), hasher.Hash("samepassword"))

	other := HMACPasswordHasher{Salt: []byte("different-salt")}
	assert.NotEqual(t, hasher.Hash("samepassword"), other.Hash("samepassword"))
}
