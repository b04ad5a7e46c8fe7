package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	clienterrors "github.com/ideahub/ideahub-client/internal/errors"
	"github.com/ideahub/ideahub-client/internal/types"
)

// Reaction verbs understood by the server.
const (
	VerbLike = "like"
	VerbPin  = "pin"
	VerbSave = "save"
	VerbRate = "rate"
	VerbView = "view"
)

// SetReaction sets (POST) or removes (DELETE) a boolean reaction and returns
// the authoritative InteractionState the server computed afterwards.
func SetReaction(ctx context.Context, httpClient *http.Client, baseURL string, key types.EntityKey, verb string, on bool, token string) (*types.InteractionState, error) {
	method := http.MethodPost
	if !on {
		method = http.MethodDelete
	}
	return doReaction(ctx, httpClient, baseURL, key, verb, method, nil, token)
}

// Rate submits a rating for an entity and returns the updated state.
func Rate(ctx context.Context, httpClient *http.Client, baseURL string, key types.EntityKey, rating float64, token string) (*types.InteractionState, error) {
	if err := types.ValidateRating(rating); err != nil {
		return nil, err
	}
	body, err := json.Marshal(types.RateRequest{Rating: rating})
	if err != nil {
		return nil, err
	}
	return doReaction(ctx, httpClient, baseURL, key, VerbRate, http.MethodPost, body, token)
}

// RecordView reports a view of an entity and returns the updated state.
func RecordView(ctx context.Context, httpClient *http.Client, baseURL string, key types.EntityKey, token string) (*types.InteractionState, error) {
	return doReaction(ctx, httpClient, baseURL, key, VerbView, http.MethodPost, nil, token)
}

func doReaction(ctx context.Context, httpClient *http.Client, baseURL string, key types.EntityKey, verb, method string, body []byte, token string) (*types.InteractionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateEntityKey(key); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v1/interactions/%s/%s/%s", baseURL, key.Type, key.ID, verb)
	var rd *bytes.Buffer
	var httpReq *http.Request
	var err error
	if body != nil {
		rd = bytes.NewBuffer(body)
		httpReq, err = http.NewRequestWithContext(ctx, method, url, rd)
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return nil, err
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	setParticipationToken(httpReq, token)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError(verb, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp, verb)
	}

	var st types.InteractionState
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}
