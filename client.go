package client

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ideahub/ideahub-client/internal/api"
	"github.com/ideahub/ideahub-client/internal/job"
	"github.com/ideahub/ideahub-client/internal/shardqueue"
	"github.com/ideahub/ideahub-client/internal/tokenstore"
	"github.com/ideahub/ideahub-client/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the entry point of the SDK. It owns the interaction state
// cache, the session state machine, the participation token store and the
// shared HTTP pipeline. Each Client is an independent state container:
// create one at application start, Close it at shutdown, and construct
// fresh instances in tests.
type Client struct {
	baseURL string
	http    *http.Client
	exec    executor
	tokens  *tokenstore.Store
	cache   *StateCache
	session *Session
	log     zerolog.Logger

	// Optional secondary bearer credential attached alongside the session
	// cookie. Empty means cookie-only.
	bearerToken string

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given backend origin. A missing baseURL
// is a configuration error but not fatal: it is logged and requests
// resolve against a relative path.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		log.Error().Msg("client: no backend base URL configured, requests will resolve against a relative path")
	}

	// The cookie jar is what makes session mode work: the server sets a
	// session cookie on login and the jar replays it on every request.
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second, Jar: jar},
		tokens:  tokenstore.New(),
		log:     log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor(c.log)
	}

	c.cache = NewStateCache()
	c.session = newSession(c.http, c.baseURL, c.log)

	// Wrap the transport so every request carries a request id and, if
	// configured, the secondary bearer credential.
	c.wrapTransport()

	return c
}

// wrapTransport installs the credential transport beneath any debug
// transport already configured by options.
func (c *Client) wrapTransport() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &credentialTransport{
		base:   baseTransport,
		bearer: c.bearerToken,
	}
}

// credentialTransport wraps an http.RoundTripper to stamp each request with
// a correlation id and the optional bearer credential. The per-discussion
// participation token is NOT attached here: which credential mode applies
// is the caller's decision per request, never inferred by the HTTP layer.
type credentialTransport struct {
	base   http.RoundTripper
	bearer string
}

func (t *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-ID", uuid.NewString())
	if t.bearer != "" {
		cloned.Header.Set("Authorization", "Bearer "+t.bearer)
	}
	return t.base.RoundTrip(cloned)
}

// Start runs the one automatic startup auth check. Failures are absorbed
// into the Unauthenticated state, so Start never returns an error.
func (c *Client) Start(ctx context.Context) {
	c.session.CheckAuthStatus(ctx)
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// Session returns the session state machine.
func (c *Client) Session() *Session { return c.session }

// States returns the interaction state cache for synchronous reads and
// optimistic patches.
func (c *Client) States() *StateCache { return c.cache }

// --------------------------------------------------------------------
// Participation tokens
// --------------------------------------------------------------------

// SetParticipationToken stores the anonymous participation credential for a
// discussion. Subsequent anonymous-mode requests for that discussion carry
// it as an explicit header.
func (c *Client) SetParticipationToken(discussionID, token string) {
	c.tokens.Set(discussionID, token)
}

// ClearParticipationToken drops the credential when anonymous participation
// in a discussion ends.
func (c *Client) ClearParticipationToken(discussionID string) {
	c.tokens.Clear(discussionID)
}

// --------------------------------------------------------------------
// Interaction state operations - delegated to internal/api
// --------------------------------------------------------------------

// LoadBulkStates fetches InteractionState for many entities in one batched
// request and merges every returned pair into the cache. Entities absent
// from the response stay unknown. On failure the cache is left unchanged,
// the error is recorded for observation, and the caller decides whether to
// re-invoke; there is no automatic retry.
func (c *Client) LoadBulkStates(ctx context.Context, cred Credential, keys []EntityKey) error {
	if len(keys) == 0 {
		return nil
	}
	c.cache.setLoading(true)
	defer c.cache.setLoading(false)

	states, err := api.FetchBulkStates(ctx, c.http, c.baseURL, keys, c.resolveToken(cred))
	if err != nil {
		bulkLoadsTotal.WithLabelValues("error").Inc()
		c.cache.setLastError(err)
		c.log.Warn().Err(err).Int("entities", len(keys)).Msg("bulk state load failed")
		return err
	}
	c.cache.applyStates(states)
	c.cache.setLastError(nil)
	bulkLoadsTotal.WithLabelValues("ok").Inc()
	return nil
}

// RefreshState fetches one entity's authoritative state in the background
// and merges it in, superseding any optimistic patch. Refreshes for the
// same entity run FIFO; fetch errors are logged and swallowed so the last
// known (possibly optimistic) state stays in place. The returned error only
// reports submission failures (back-pressure, closed client).
func (c *Client) RefreshState(ctx context.Context, cred Credential, key EntityKey) error {
	if err := types.ValidateEntityKey(key); err != nil {
		return err
	}
	refreshJob := job.New(func(jobCtx context.Context) error {
		// Resolve the token at run time: the store may have changed
		// between submission and execution.
		st, err := api.FetchState(jobCtx, c.http, c.baseURL, key, c.resolveToken(cred))
		if err != nil {
			return err
		}
		c.cache.merge(key, types.FullStatePatch(*st))
		return nil
	})
	return c.exec.Submit(ctx, key.String(), refreshJob)
}

// AwaitRefreshes blocks until all previously submitted refreshes for key
// have been executed. It works by submitting a no-op job and waiting for it
// to run, thereby guaranteeing FIFO ordering has flushed.
func (c *Client) AwaitRefreshes(ctx context.Context, key EntityKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	barrier := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, key.String(), barrier); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// resolveToken maps a credential to the participation token to attach, or
// "" for session mode and for discussions with no stored token (the header
// is then omitted entirely).
func (c *Client) resolveToken(cred Credential) string {
	if cred.mode != credParticipation {
		return ""
	}
	tok, _ := c.tokens.Get(cred.discussionID)
	return tok
}

// newDefaultExecutor constructs the shardqueue executor used for refresh
// jobs. SQ_* environment overrides are honoured; the error handler logs
// exhausted refreshes, which is the whole failure path for best-effort
// reconciliation.
func newDefaultExecutor(logger zerolog.Logger) *shardqueue.ShardExecutor {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		logger.Warn().Err(err).Msg("invalid SQ_* environment, using defaults")
		cfg = shardqueue.Config{}
	}
	if cfg.Shards <= 0 {
		cfg.Shards = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	cfg.ErrorHandler = func(err error) {
		refreshFailuresTotal.Inc()
		logger.Debug().Err(err).Msg("state refresh abandoned")
	}
	return shardqueue.NewShardExecutor(cfg)
}
