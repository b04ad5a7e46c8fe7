package types

// ------------------------------
// Response Types
// ------------------------------

// BulkStateResponse maps serialized EntityKeys ("type:id") to their state.
// Requested entities absent from States are still unknown, not cleared.
type BulkStateResponse struct {
	States map[string]InteractionState `json:"states"`
}

// ErrorResponse is the structured error body the backend returns on
// failures. Its detail is preferred over a generic message when present.
type ErrorResponse struct {
	Error string `json:"error"`
}
