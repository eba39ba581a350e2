package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID()

	assert.True(t, strings.HasPrefix(id, "TOKEN-"))
	assert.Len(t, id, len("TOKEN-")+8)

	for _, ch := range strings.TrimPrefix(id, "TOKEN-") {
		assert.Contains(t, orderIDBytes, string(ch))
	}
}

func TestGenerateOrderIDVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateOrderID()] = true
	}
	assert.Greater(t, len(seen), 1)
}
