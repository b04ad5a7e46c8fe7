package shardqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the executor. Zero values take the defaults applied in
// NewShardExecutor.
type Config struct {
	// Shards is the number of worker goroutines; jobs with the same key
	// always land on the same shard.
	Shards int `envconfig:"SHARDS"`
	// QueueSize bounds each shard's buffered channel.
	QueueSize int `envconfig:"QUEUE_SIZE"`
	// EnqueueTimeout is how long Submit waits for space before reporting
	// back-pressure.
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT"`
	// MaxAttempts caps retries for recoverable job errors.
	MaxAttempts int `envconfig:"MAX_ATTEMPTS"`
	// BaseBackoff and MaxInterval shape the exponential retry backoff.
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL"`

	// ErrorHandler receives the final error of a job that exhausted its
	// retries or was canceled. Panics inside the handler are recovered.
	ErrorHandler func(error) `ignored:"true"`
}

// LoadConfig builds a Config from SQ_* environment variables
// (SQ_SHARDS, SQ_QUEUE_SIZE, SQ_ENQUEUE_TIMEOUT, SQ_MAX_ATTEMPTS,
// SQ_BASE_BACKOFF, SQ_MAX_INTERVAL).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("sq", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
