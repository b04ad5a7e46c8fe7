package client

// Credential classifies a request into exactly one of two modes. The
// caller's context decides which applies; the HTTP layer never infers it.
//
// Session mode sends no explicit header: the session cookie in the client's
// jar travels implicitly. Participation mode consults the token store for
// the given discussion and attaches the token as an explicit header when
// present; when absent the request goes out without it, which the server
// treats as fully anonymous rather than as an error.
type Credential struct {
	mode         credentialMode
	discussionID string
}

type credentialMode int

const (
	credSession credentialMode = iota
	credParticipation
)

// SessionCredential selects session-cookie mode.
func SessionCredential() Credential {
	return Credential{mode: credSession}
}

// ParticipationCredential selects anonymous-token mode for one discussion.
func ParticipationCredential(discussionID string) Credential {
	return Credential{mode: credParticipation, discussionID: discussionID}
}
