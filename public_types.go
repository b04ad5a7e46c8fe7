package client

import "github.com/ideahub/ideahub-client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Entity identity
	EntityType = types.EntityType
	EntityKey  = types.EntityKey

	// Interaction state
	InteractionState = types.InteractionState
	Metrics          = types.Metrics
	UserEntityState  = types.UserEntityState
	StatePatch       = types.StatePatch
	UserStatePatch   = types.UserStatePatch

	// Identity
	User = types.User
)

// Entity type constants re-exported for callers.
const (
	EntityDiscussion = types.EntityDiscussion
	EntityTopic      = types.EntityTopic
	EntityIdea       = types.EntityIdea
)

// ParseEntityKey parses a serialized "type:id" key.
var ParseEntityKey = types.ParseEntityKey

// Errors re-exported in errors.go
