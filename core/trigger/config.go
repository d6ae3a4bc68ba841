package trigger

import "time"

// Config holds trigger settings.
// Designed for environment-based configuration, see the core/config package.
type Config struct {
	ShutdownTimeout        time.Duration `env:"TRIGGER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	MaxConcurrentSchedules int           `env:"TRIGGER_MAX_CONCURRENT_SCHEDULES" envDefault:"0"`
	DefaultPriority        Priority      `env:"TRIGGER_DEFAULT_PRIORITY" envDefault:"normal"`
	QueueSize              int           `env:"TRIGGER_QUEUE_SIZE" envDefault:"1024"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		ShutdownTimeout:        30 * time.Second,
		MaxConcurrentSchedules: 0,
		DefaultPriority:        PriorityNormal,
		QueueSize:              DefaultQueueSize,
	}
}

// Options converts the config into trigger options.
func (c Config) Options() []Option {
	return []Option{
		WithShutdownTimeout(c.ShutdownTimeout),
		WithMaxConcurrentSchedules(c.MaxConcurrentSchedules),
		WithDefaultPriority(c.DefaultPriority),
	}
}

// NewFromConfig creates a trigger from config. Explicit options are applied after
// the config and take precedence.
func NewFromConfig[T any](cfg Config, opts ...Option) *Trigger[T] {
	return New[T](append(cfg.Options(), opts...)...)
}

// NewQueueFromConfig creates a queue sized by cfg.QueueSize.
func NewQueueFromConfig[T any](cfg Config) *Queue[T] {
	return NewQueue[T](WithQueueSize(cfg.QueueSize))
}
