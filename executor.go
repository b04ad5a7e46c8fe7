package client

import (
	"context"

	"github.com/ideahub/ideahub-client/internal/shardqueue"
)

// executor abstracts the internal async job runner used by refresh
// operations.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Stop()
}

// Note: all clients include an executor by default; async methods require it.
