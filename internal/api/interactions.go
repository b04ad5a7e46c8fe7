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

// FetchBulkStates retrieves InteractionState for many entities in one
// request. The response maps serialized EntityKeys to states; requested
// entities the server omits are simply absent from the result.
func FetchBulkStates(ctx context.Context, httpClient *http.Client, baseURL string, keys []types.EntityKey, token string) (map[string]types.InteractionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, k := range keys {
		if err := types.ValidateEntityKey(k); err != nil {
			return nil, err
		}
	}
	body, err := json.Marshal(types.BulkStateRequest{Entities: keys})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v1/interactions/bulk", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	setParticipationToken(httpReq, token)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError("bulk state fetch", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp, "bulk state fetch")
	}

	var br types.BulkStateResponse
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return nil, err
	}
	return br.States, nil
}

// FetchState retrieves the authoritative InteractionState of one entity.
func FetchState(ctx context.Context, httpClient *http.Client, baseURL string, key types.EntityKey, token string) (*types.InteractionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateEntityKey(key); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v1/interactions/%s/%s", baseURL, key.Type, key.ID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	setParticipationToken(httpReq, token)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError("state fetch", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp, "state fetch")
	}

	var st types.InteractionState
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}
