package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWellKnownConfigDefault(t *testing.T) {
	t.Parallel()

	cfg, ok := wellKnownConfigDefault("deliveryEmail")
	require.True(t, ok)
	assert.Equal(t, "deliveryEmail", cfg.Key)
	assert.Empty(t, cfg.Value)

	_, ok = wellKnownConfigDefault("someUnknownKey")
	assert.False(t, ok)
}
