package coreexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExecutorOptions_Defaults(t *testing.T) {
	cfg := resolveExecutorOptions(nil)

	assert.Equal(t, defaultTaskCapacity, cfg.taskCapacity)
	assert.Equal(t, defaultArenaBudget, cfg.arenaBudget)
	assert.NotNil(t, cfg.hooks)
	assert.NotNil(t, cfg.logger)
}

func TestResolveExecutorOptions_Overrides(t *testing.T) {
	hooks := newTestHooks(t)
	logger := NewNoOpLogger()

	cfg := resolveExecutorOptions([]ExecutorOption{
		WithTaskCapacity(16),
		WithArenaBudget(4096),
		WithHooks(hooks),
		WithLogger(logger),
	})

	assert.Equal(t, 16, cfg.taskCapacity)
	assert.Equal(t, 4096, cfg.arenaBudget)
	assert.Equal(t, hooks, cfg.hooks)
	assert.Equal(t, logger, cfg.logger)
}
