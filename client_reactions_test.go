package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ideahub/ideahub-client/internal/types"
)

// reactionServer confirms any reaction by echoing back a state with the
// requested user flag plus a server-computed metric.
func reactionServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := types.InteractionState{
			Metrics:   &types.Metrics{LikeCount: 7},
			UserState: &types.UserEntityState{},
			CanLike:   true,
		}
		switch r.URL.Path {
		case "/v1/interactions/idea/i1/like":
			st.UserState.Liked = r.Method == http.MethodPost
		case "/v1/interactions/idea/i1/pin":
			st.UserState.Pinned = r.Method == http.MethodPost
		case "/v1/interactions/idea/i1/save":
			st.UserState.Saved = r.Method == http.MethodPost
		case "/v1/interactions/idea/i1/rate":
			var req types.RateRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			st.UserState.UserRating = &req.Rating
		case "/v1/interactions/idea/i1/view":
			st.UserState.ViewCount = 3
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(st)
	}))
}

func TestLike_OptimisticThenConfirmed(t *testing.T) {
	t.Parallel()
	srv := reactionServer(t)
	defer srv.Close()
	c := New(srv.URL)
	defer func() { _ = c.Close() }()
	k := EntityKey{Type: EntityIdea, ID: "i1"}

	if err := c.Like(context.Background(), SessionCredential(), k); err != nil {
		t.Fatalf("Like: %v", err)
	}
	st, ok := c.States().GetState(EntityIdea, "i1")
	if !ok || !st.UserState.Liked {
		t.Fatalf("like not applied: %+v ok=%v", st, ok)
	}
	// The server's authoritative metrics arrived with the confirmation.
	if st.Metrics == nil || st.Metrics.LikeCount != 7 {
		t.Fatalf("confirmation not merged: %+v", st)
	}

	if err := c.Unlike(context.Background(), SessionCredential(), k); err != nil {
		t.Fatalf("Unlike: %v", err)
	}
	st, _ = c.States().GetState(EntityIdea, "i1")
	if st.UserState.Liked {
		t.Fatal("unlike not applied")
	}
}

func TestPinSave_RoundTrip(t *testing.T) {
	t.Parallel()
	srv := reactionServer(t)
	defer srv.Close()
	c := New(srv.URL)
	defer func() { _ = c.Close() }()
	k := EntityKey{Type: EntityIdea, ID: "i1"}

	if err := c.Pin(context.Background(), SessionCredential(), k); err != nil {
		t.Fatalf("Pin: %v", err)
	}
	if err := c.Save(context.Background(), SessionCredential(), k); err != nil {
		t.Fatalf("Save: %v", err)
	}
	st, _ := c.States().GetState(EntityIdea, "i1")
	if !st.UserState.Saved {
		t.Fatalf("save not applied: %+v", st.UserState)
	}
	// The save confirmation carried a full user block with Pinned false,
	// which is authoritative and overwrites the earlier optimistic pin.
	if st.UserState.Pinned {
		t.Fatal("server confirmation should be authoritative for the whole user block")
	}

	if err := c.Unpin(context.Background(), SessionCredential(), k); err != nil {
		t.Fatalf("Unpin: %v", err)
	}
	if err := c.Unsave(context.Background(), SessionCredential(), k); err != nil {
		t.Fatalf("Unsave: %v", err)
	}
	st, _ = c.States().GetState(EntityIdea, "i1")
	if st.UserState.Pinned || st.UserState.Saved {
		t.Fatalf("clear reactions not applied: %+v", st.UserState)
	}
}

func TestRate_ValidationAndConfirmation(t *testing.T) {
	t.Parallel()
	srv := reactionServer(t)
	defer srv.Close()
	c := New(srv.URL)
	defer func() { _ = c.Close() }()
	k := EntityKey{Type: EntityIdea, ID: "i1"}

	if err := c.Rate(context.Background(), SessionCredential(), k, 0); err == nil {
		t.Fatal("rating 0 accepted")
	}
	if err := c.Rate(context.Background(), SessionCredential(), k, 5.5); err == nil {
		t.Fatal("rating 5.5 accepted")
	}
	if _, ok := c.States().GetState(EntityIdea, "i1"); ok {
		t.Fatal("rejected rating touched the cache")
	}

	if err := c.Rate(context.Background(), SessionCredential(), k, 4.5); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	st, _ := c.States().GetState(EntityIdea, "i1")
	if st.UserState.UserRating == nil || *st.UserState.UserRating != 4.5 {
		t.Fatalf("rating not recorded: %+v", st.UserState)
	}
}

func TestRecordView_IncrementsThenConfirms(t *testing.T) {
	t.Parallel()
	srv := reactionServer(t)
	defer srv.Close()
	c := New(srv.URL)
	defer func() { _ = c.Close() }()
	k := EntityKey{Type: EntityIdea, ID: "i1"}

	if err := c.RecordView(context.Background(), SessionCredential(), k); err != nil {
		t.Fatalf("RecordView: %v", err)
	}
	st, _ := c.States().GetState(EntityIdea, "i1")
	// The server said 3 views; its confirmation wins over the local +1.
	if st.UserState.ViewCount != 3 {
		t.Fatalf("ViewCount = %d, want server value 3", st.UserState.ViewCount)
	}
}

func TestReaction_FailureKeepsOptimisticPatch(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: "participation required"})
	}))
	defer srv.Close()
	c := New(srv.URL)
	defer func() { _ = c.Close() }()
	k := EntityKey{Type: EntityIdea, ID: "i1"}

	err := c.Like(context.Background(), SessionCredential(), k)
	if err == nil || err.Error() != "participation required" {
		t.Fatalf("expected server detail, got %v", err)
	}
	if !IsUnauthorized(err) {
		t.Fatalf("403 not classified as unauthorized: %v", err)
	}
	// No rollback: the optimistic like remains until a refresh supersedes it.
	st, ok := c.States().GetState(EntityIdea, "i1")
	if !ok || !st.UserState.Liked {
		t.Fatalf("optimistic patch rolled back: %+v ok=%v", st, ok)
	}
}
