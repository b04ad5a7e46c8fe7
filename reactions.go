package client

import (
	"context"

	"github.com/ideahub/ideahub-client/internal/api"
	"github.com/ideahub/ideahub-client/internal/types"
)

// --------------------------------------------------------------------
// Reaction operations - optimistic patch, then server confirmation
// --------------------------------------------------------------------
//
// Each reaction applies its optimistic patch synchronously before the
// request, so the UI reflects the action immediately. On success the
// server's authoritative state is merged in; on failure the error is
// returned and the optimistic patch stays in place for a later refresh to
// supersede. There is no rollback here: callers wanting it snapshot the
// prior state with States().GetState first.

// Like marks the entity liked by the current identity.
func (c *Client) Like(ctx context.Context, cred Credential, key EntityKey) error {
	return c.setReaction(ctx, cred, key, api.VerbLike, true)
}

// Unlike removes the like.
func (c *Client) Unlike(ctx context.Context, cred Credential, key EntityKey) error {
	return c.setReaction(ctx, cred, key, api.VerbLike, false)
}

// Pin marks the entity pinned.
func (c *Client) Pin(ctx context.Context, cred Credential, key EntityKey) error {
	return c.setReaction(ctx, cred, key, api.VerbPin, true)
}

// Unpin removes the pin.
func (c *Client) Unpin(ctx context.Context, cred Credential, key EntityKey) error {
	return c.setReaction(ctx, cred, key, api.VerbPin, false)
}

// Save marks the entity saved.
func (c *Client) Save(ctx context.Context, cred Credential, key EntityKey) error {
	return c.setReaction(ctx, cred, key, api.VerbSave, true)
}

// Unsave removes the save.
func (c *Client) Unsave(ctx context.Context, cred Credential, key EntityKey) error {
	return c.setReaction(ctx, cred, key, api.VerbSave, false)
}

// Rate submits a rating in [1,5] for the entity.
func (c *Client) Rate(ctx context.Context, cred Credential, key EntityKey, rating float64) error {
	if err := types.ValidateRating(rating); err != nil {
		return err
	}
	r := rating
	c.cache.SetState(key, StatePatch{UserState: &UserStatePatch{UserRating: &r}})

	st, err := api.Rate(ctx, c.http, c.baseURL, key, rating, c.resolveToken(cred))
	if err != nil {
		return err
	}
	c.cache.merge(key, types.FullStatePatch(*st))
	return nil
}

// RecordView reports a view of the entity.
func (c *Client) RecordView(ctx context.Context, cred Credential, key EntityKey) error {
	c.cache.UpdateStateWith(key, func(cur InteractionState) StatePatch {
		views := 1
		if cur.UserState != nil {
			views = cur.UserState.ViewCount + 1
		}
		return StatePatch{UserState: &UserStatePatch{ViewCount: &views}}
	})

	st, err := api.RecordView(ctx, c.http, c.baseURL, key, c.resolveToken(cred))
	if err != nil {
		return err
	}
	c.cache.merge(key, types.FullStatePatch(*st))
	return nil
}

func (c *Client) setReaction(ctx context.Context, cred Credential, key EntityKey, verb string, on bool) error {
	v := on
	patch := StatePatch{UserState: &UserStatePatch{}}
	switch verb {
	case api.VerbLike:
		patch.UserState.Liked = &v
	case api.VerbPin:
		patch.UserState.Pinned = &v
	case api.VerbSave:
		patch.UserState.Saved = &v
	}
	c.cache.SetState(key, patch)

	st, err := api.SetReaction(ctx, c.http, c.baseURL, key, verb, on, c.resolveToken(cred))
	if err != nil {
		return err
	}
	c.cache.merge(key, types.FullStatePatch(*st))
	return nil
}
