package types

// ------------------------------
// Request Types
// ------------------------------

// BulkStateRequest asks the server for InteractionState of many entities in
// one round trip.
type BulkStateRequest struct {
	Entities []EntityKey `json:"entities"`
}

// LoginRequest holds credential-exchange parameters. The server answers by
// setting a session cookie; no token is returned to the client.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RateRequest carries the rating value for a rate reaction.
type RateRequest struct {
	Rating float64 `json:"rating"`
}
