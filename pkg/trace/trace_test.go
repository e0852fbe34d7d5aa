package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitTracing(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), "gestiparc-test", "localhost:4318", zap.NewNop())
	assert.NoError(t, err)
	if assert.NotNil(t, shutdown) {
		// No collector is listening; shutdown flushes best-effort
		_ = shutdown(context.Background())
	}
}

func TestInitTracing_DefaultEndpoint(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), "gestiparc-test", "", zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, shutdown)
	_ = shutdown(context.Background())
}
