package coreexec

import "github.com/joeycumines/go-coreexec/platform"

// executorOptions holds configuration for NewExecutor.
type executorOptions struct {
	taskCapacity  int
	arenaBudget   int
	hooks         platform.Hooks
	logger        Logger
}

// ExecutorOption configures an Executor instance.
type ExecutorOption interface {
	applyExecutor(*executorOptions)
}

// executorOptionFunc implements ExecutorOption.
type executorOptionFunc func(*executorOptions)

func (f executorOptionFunc) applyExecutor(opts *executorOptions) { f(opts) }

// WithTaskCapacity sets NTASKS, the maximum number of tasks Spawn will
// accept before invoking platform.Hooks.Abort. Defaults to 8.
func WithTaskCapacity(n int) ExecutorOption {
	return executorOptionFunc(func(opts *executorOptions) {
		opts.taskCapacity = n
	})
}

// WithArenaBudget sets the byte budget of the bump arena backing spawned
// task records. Defaults to 1024.
func WithArenaBudget(bytes int) ExecutorOption {
	return executorOptionFunc(func(opts *executorOptions) {
		opts.arenaBudget = bytes
	})
}

// WithHooks sets the platform.Hooks implementation the executor uses for
// Abort, SignalEventReady, and WaitForEvent. Defaults to platform.Hosted().
func WithHooks(hooks platform.Hooks) ExecutorOption {
	return executorOptionFunc(func(opts *executorOptions) {
		opts.hooks = hooks
	})
}

// WithLogger sets the Logger used for diagnostic output. Defaults to the
// package-level logger set via SetLogger.
func WithLogger(logger Logger) ExecutorOption {
	return executorOptionFunc(func(opts *executorOptions) {
		opts.logger = logger
	})
}

// resolveExecutorOptions applies ExecutorOption instances over the
// defaults.
func resolveExecutorOptions(opts []ExecutorOption) *executorOptions {
	cfg := &executorOptions{
		taskCapacity: defaultTaskCapacity,
		arenaBudget:  defaultArenaBudget,
		hooks:        platform.Hosted(),
		logger:       getGlobalLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyExecutor(cfg)
	}
	return cfg
}
