package api

import (
	"encoding/json"
	"io"
	"net/http"

	clienterrors "github.com/ideahub/ideahub-client/internal/errors"
	"github.com/ideahub/ideahub-client/internal/types"
)

// ParticipationTokenHeader carries the anonymous per-discussion credential.
// The header is omitted entirely when the caller holds no token; the server
// treats a missing header as fully anonymous, not as an auth failure.
const ParticipationTokenHeader = "X-Participation-Token"

// setParticipationToken attaches the token header when token is non-empty.
func setParticipationToken(req *http.Request, token string) {
	if token != "" {
		req.Header.Set(ParticipationTokenHeader, token)
	}
}

// errorFromResponse normalizes a non-2xx response into a ClassifiedError,
// preferring the server's structured detail message when the body decodes.
func errorFromResponse(resp *http.Response, operation string) error {
	detail := ""
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
		var er types.ErrorResponse
		if json.Unmarshal(body, &er) == nil {
			detail = er.Error
		}
	}
	return clienterrors.NewHTTPError(resp.StatusCode, detail, operation)
}
