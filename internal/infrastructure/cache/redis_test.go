package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A cache whose ping failed must still release its pool cleanly.
func TestCloseAfterFailedPing(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", "", 0)

	err := c.Ping(context.Background())
	require.Error(t, err)

	assert.NoError(t, c.Close())
}
