package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuppressHeaderContext(t *testing.T) {
	ctx := context.Background()
	assert.False(t, shouldSuppressHeader(ctx))
	assert.True(t, shouldSuppressHeader(WithSuppressHeader(ctx)))
}

func TestBypassCacheContext(t *testing.T) {
	ctx := context.Background()
	assert.False(t, shouldBypassCache(ctx))
	assert.True(t, shouldBypassCache(withBypassCache(ctx)))

	// Flags are independent of each other
	assert.False(t, shouldSuppressHeader(withBypassCache(ctx)))
}
