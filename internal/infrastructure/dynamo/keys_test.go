package dynamo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationKey_Composite(t *testing.T) {
	key := registrationKey("e1", "1716000000000-a1b2c3d")
	assert.Equal(t, "registration:e1:1716000000000-a1b2c3d", key)
}

func TestRegistrationEventPrefix_ScopesOneEvent(t *testing.T) {
	prefix := registrationEventPrefix("e1")
	assert.True(t, strings.HasPrefix(registrationKey("e1", "r1"), prefix))
	assert.False(t, strings.HasPrefix(registrationKey("e10", "r1"), prefix))
}

func TestEntityKeys_DistinctPrefixes(t *testing.T) {
	keys := []string{
		eventKey("x"), brandKey("x"), partnerKey("x"), moduleKey("x"),
		registrationKey("x", "y"), keyHomepageSettings,
	}
	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], k)
		seen[k] = true
	}
}
