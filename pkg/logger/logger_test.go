package logger_test

import (
	"context"
	"testing"

	"github.com/mserjo/bossy/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGet_ReturnsDefaultWhenContextEmpty(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")

	got := logger.Get(context.Background())
	require.NotNil(t, got)
}

func TestWithLogger_RoundTrip(t *testing.T) {
	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)

	assert.Same(t, custom, logger.Get(ctx))
}

func TestWithFields_DerivesNewLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")

	base := logger.Get(context.Background())
	ctx := logger.WithFields(context.Background(), zap.String("groupID", "g1"))

	assert.NotSame(t, base, logger.Get(ctx))
}

func TestSetup_LevelOverride(t *testing.T) {
	logger.Setup(logger.ProductionEnvironment, "debug")

	assert.True(t, logger.IsDebug(context.Background()))

	logger.Setup(logger.ProductionEnvironment, "warn")
	assert.False(t, logger.IsDebug(context.Background()))
}
