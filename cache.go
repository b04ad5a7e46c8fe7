package client

import (
	"sync"

	"github.com/ideahub/ideahub-client/internal/types"
)

// StateCache maps serialized EntityKeys to InteractionState. Entries are
// created on first successful bulk load or refresh, updated by merge, and
// never deleted: the cache lives as long as its Client. Reads never trigger
// network I/O; stale-but-available is preferred over empty.
type StateCache struct {
	mu      sync.RWMutex
	states  map[string]types.InteractionState
	loading bool
	lastErr error
}

// NewStateCache returns an empty cache. Clients construct their own; tests
// can instantiate independent instances directly.
func NewStateCache() *StateCache {
	return &StateCache{states: make(map[string]types.InteractionState)}
}

// GetState is a pure synchronous read. ok is false for an entity never
// loaded: "unknown", not an empty state.
func (sc *StateCache) GetState(entityType EntityType, entityID string) (InteractionState, bool) {
	key := types.EntityKey{Type: entityType, ID: entityID}
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	st, ok := sc.states[key.String()]
	return st, ok
}

// SetState merges a literal partial state into the entry for key,
// immediately and synchronously. This is the optimistic-update path: the
// patch is visible to readers before any server confirmation. No rollback
// is provided; callers wanting rollback-on-failure snapshot the prior value
// with GetState first.
func (sc *StateCache) SetState(key EntityKey, patch StatePatch) {
	optimisticPatchesTotal.Inc()
	sc.merge(key, patch)
}

// UpdateStateWith derives a patch from the current state (or the empty
// default with all capability flags false, for an unknown entity) and
// merges it in atomically.
func (sc *StateCache) UpdateStateWith(key EntityKey, transform func(InteractionState) StatePatch) {
	optimisticPatchesTotal.Inc()
	sc.mu.Lock()
	defer sc.mu.Unlock()
	cur := sc.states[key.String()]
	sc.states[key.String()] = types.MergeState(cur, transform(cur))
}

// IsLoading reports whether a bulk load is in flight.
func (sc *StateCache) IsLoading() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.loading
}

// LastError returns the most recent bulk load failure, or nil after a
// successful load. Recorded for observation only; the failed load is never
// retried automatically.
func (sc *StateCache) LastError() error {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.lastErr
}

// merge applies one patch under the write lock. Last merge wins for
// overlapping fields; there is no per-field versioning (see package docs on
// the optimistic-update race).
func (sc *StateCache) merge(key EntityKey, patch StatePatch) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	k := key.String()
	sc.states[k] = types.MergeState(sc.states[k], patch)
}

// applyStates merges a bulk response. Requested keys absent from states are
// left untouched: still unknown, not cleared.
func (sc *StateCache) applyStates(states map[string]types.InteractionState) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	for k, st := range states {
		sc.states[k] = types.MergeState(sc.states[k], types.FullStatePatch(st))
	}
}

func (sc *StateCache) setLoading(v bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.loading = v
}

func (sc *StateCache) setLastError(err error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.lastErr = err
}
