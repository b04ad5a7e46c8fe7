package types

import (
	"fmt"
	"strings"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// EntityType identifies which kind of content an EntityKey refers to.
type EntityType string

const (
	EntityDiscussion EntityType = "discussion"
	EntityTopic      EntityType = "topic"
	EntityIdea       EntityType = "idea"
)

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	switch t {
	case EntityDiscussion, EntityTopic, EntityIdea:
		return true
	}
	return false
}

// EntityKey is the composite identity of one content entity. Keys are stable
// for the lifetime of the entity and never reused across types.
type EntityKey struct {
	Type EntityType `json:"type"`
	ID   string     `json:"id"`
}

// String serializes the key as "type:id", the map key used on the wire and
// in the state cache.
func (k EntityKey) String() string {
	return string(k.Type) + ":" + k.ID
}

// ParseEntityKey parses a "type:id" string back into an EntityKey.
func ParseEntityKey(s string) (EntityKey, error) {
	typ, id, ok := strings.Cut(s, ":")
	if !ok || id == "" {
		return EntityKey{}, fmt.Errorf("malformed entity key %q", s)
	}
	k := EntityKey{Type: EntityType(typ), ID: id}
	if !k.Type.Valid() {
		return EntityKey{}, fmt.Errorf("unknown entity type %q", typ)
	}
	return k, nil
}

// Metrics holds the aggregate counters the server maintains for one entity.
type Metrics struct {
	LikeCount          int            `json:"likeCount"`
	ViewCount          int            `json:"viewCount"`
	PinCount           int            `json:"pinCount"`
	SaveCount          int            `json:"saveCount"`
	UniqueViewCount    int            `json:"uniqueViewCount"`
	RatingCount        int            `json:"ratingCount"`
	RatingSum          float64        `json:"ratingSum"`
	AverageRating      float64        `json:"averageRating"`
	RatingDistribution map[string]int `json:"ratingDistribution,omitempty"`
	LastActivityAt     *time.Time     `json:"lastActivityAt,omitempty"`
}

// UserEntityState is the requesting identity's personal relationship to one
// entity.
type UserEntityState struct {
	Liked         bool       `json:"liked"`
	Pinned        bool       `json:"pinned"`
	Saved         bool       `json:"saved"`
	ViewCount     int        `json:"viewCount"`
	FirstViewedAt *time.Time `json:"firstViewedAt,omitempty"`
	LastViewedAt  *time.Time `json:"lastViewedAt,omitempty"`
	UserRating    *float64   `json:"userRating,omitempty"`
}

// InteractionState is the cached value for one EntityKey. Metrics and
// UserState are independently optional: a partial merge may carry only one
// of them, and a nil field means "unknown", not zero.
type InteractionState struct {
	Metrics   *Metrics         `json:"metrics,omitempty"`
	UserState *UserEntityState `json:"userState,omitempty"`

	// Capability flags are policy decisions returned by the server
	// (ownership, discussion phase). The client never computes them.
	CanLike bool `json:"canLike"`
	CanPin  bool `json:"canPin"`
	CanSave bool `json:"canSave"`
}

// User represents an authenticated platform user.
type User struct {
	ID            string     `json:"userId"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	DisplayName   string     `json:"displayName,omitempty"`
	AvatarURL     string     `json:"avatarUrl,omitempty"`
	EmailVerified bool       `json:"emailVerified"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastSeenAt    *time.Time `json:"lastSeenAt,omitempty"`
}
