package net_test

import (
	"context"
	"testing"

	pnet "langid/internal/platform/net"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestID_And_Getter(t *testing.T) {
	base := context.Background()

	t.Run("sets request id", func(t *testing.T) {
		ctx := pnet.WithRequestID(base, "req-123")
		assert.Equal(t, "req-123", pnet.RequestID(ctx))
	})

	t.Run("empty id returns same ctx", func(t *testing.T) {
		ctx := pnet.WithRequestID(base, "")
		assert.True(t, ctx == base, "ctx must be unchanged when id is empty")
		assert.Empty(t, pnet.RequestID(ctx))
	})
}
