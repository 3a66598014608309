package kernel_test

import (
	"strings"
	"testing"

	"ordersvc/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	id := kernel.NewOrderID()

	assert.True(t, strings.HasPrefix(id, "ORD-"))

	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestNewEventID(t *testing.T) {
	id := kernel.NewEventID()

	assert.True(t, strings.HasPrefix(id, "EVT-"))
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id := kernel.NewOrderID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id generated: %s", id)
		seen[id] = struct{}{}
	}
}
