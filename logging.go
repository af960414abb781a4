package mapreduce

import "go.uber.org/zap"

// Option customizes a Run invocation. The only customizable ambient
// concern is logging; the core contract (partitioning, sorting,
// draining) cannot be altered through options.
type Option func(*runConfig)

type runConfig struct {
	logger *zap.Logger
}

func newRunConfig(opts ...Option) *runConfig {
	cfg := &runConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger attaches a *zap.Logger that Run uses to report phase
// transitions and worker lifecycle events. Without this option the
// engine is silent, matching its documented no-diagnostics default.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *runConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
