package client

import (
	"errors"

	clienterrors "github.com/ideahub/ideahub-client/internal/errors"
	"github.com/ideahub/ideahub-client/internal/shardqueue"
	"github.com/ideahub/ideahub-client/internal/types"
)

// ErrBackPressure is returned when the client's internal refresh queue is
// full.
var ErrBackPressure = shardqueue.ErrQueueFull

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrNoSession is returned when the server reports no identity bound to
// the session cookie. Re-exported so callers compare against a single
// symbol.
var ErrNoSession = types.ErrNoSession

// IsUnauthorized reports whether err is a 401/403-class authorization
// failure. Such failures are never auto-retried and do not by themselves
// transition the session state machine.
func IsUnauthorized(err error) bool { return clienterrors.IsUnauthorized(err) }
