package types

import "time"

// ------------------------------
// Partial-state patches
// ------------------------------

// StatePatch is a partial InteractionState. Nil fields mean "leave as is";
// non-nil fields override. Metrics replaces the whole aggregate block (the
// server is authoritative for counters), while UserState merges field-wise
// so two optimistic patches with disjoint fields both persist.
type StatePatch struct {
	Metrics   *Metrics
	UserState *UserStatePatch
	CanLike   *bool
	CanPin    *bool
	CanSave   *bool
}

// UserStatePatch is a partial UserEntityState.
type UserStatePatch struct {
	Liked         *bool
	Pinned        *bool
	Saved         *bool
	ViewCount     *int
	FirstViewedAt *time.Time
	LastViewedAt  *time.Time
	UserRating    *float64
}

// MergeState applies p to cur and returns the result. cur is not modified.
func MergeState(cur InteractionState, p StatePatch) InteractionState {
	out := cur
	if p.Metrics != nil {
		m := *p.Metrics
		out.Metrics = &m
	}
	if p.UserState != nil {
		out.UserState = mergeUserState(cur.UserState, p.UserState)
	}
	if p.CanLike != nil {
		out.CanLike = *p.CanLike
	}
	if p.CanPin != nil {
		out.CanPin = *p.CanPin
	}
	if p.CanSave != nil {
		out.CanSave = *p.CanSave
	}
	return out
}

func mergeUserState(cur *UserEntityState, p *UserStatePatch) *UserEntityState {
	var out UserEntityState
	if cur != nil {
		out = *cur
	}
	if p.Liked != nil {
		out.Liked = *p.Liked
	}
	if p.Pinned != nil {
		out.Pinned = *p.Pinned
	}
	if p.Saved != nil {
		out.Saved = *p.Saved
	}
	if p.ViewCount != nil {
		out.ViewCount = *p.ViewCount
	}
	if p.FirstViewedAt != nil {
		t := *p.FirstViewedAt
		out.FirstViewedAt = &t
	}
	if p.LastViewedAt != nil {
		t := *p.LastViewedAt
		out.LastViewedAt = &t
	}
	if p.UserRating != nil {
		r := *p.UserRating
		out.UserRating = &r
	}
	return &out
}

// FullStatePatch converts a complete server-provided InteractionState into a
// patch so authoritative responses flow through the same merge path as
// optimistic updates. Missing optional blocks stay nil and therefore leave
// any locally known value untouched.
func FullStatePatch(s InteractionState) StatePatch {
	p := StatePatch{
		Metrics: s.Metrics,
		CanLike: &s.CanLike,
		CanPin:  &s.CanPin,
		CanSave: &s.CanSave,
	}
	if us := s.UserState; us != nil {
		p.UserState = &UserStatePatch{
			Liked:         &us.Liked,
			Pinned:        &us.Pinned,
			Saved:         &us.Saved,
			ViewCount:     &us.ViewCount,
			FirstViewedAt: us.FirstViewedAt,
			LastViewedAt:  us.LastViewedAt,
			UserRating:    us.UserRating,
		}
	}
	return p
}
