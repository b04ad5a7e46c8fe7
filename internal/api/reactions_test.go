package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ideahub/ideahub-client/internal/types"
)

func TestSetReaction_PostAndDelete(t *testing.T) {
	t.Parallel()
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(types.InteractionState{
			UserState: &types.UserEntityState{Liked: r.Method == http.MethodPost},
			Metrics:   &types.Metrics{LikeCount: 1},
		})
	}))
	defer srv.Close()

	key := types.EntityKey{Type: types.EntityIdea, ID: "i1"}

	st, err := SetReaction(context.Background(), srv.Client(), srv.URL, key, VerbLike, true, "")
	if err != nil || !st.UserState.Liked {
		t.Fatalf("like on: st=%+v err=%v", st, err)
	}
	if gotMethod != http.MethodPost || gotPath != "/v1/interactions/idea/i1/like" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}

	st, err = SetReaction(context.Background(), srv.Client(), srv.URL, key, VerbLike, false, "")
	if err != nil || st.UserState.Liked {
		t.Fatalf("like off: st=%+v err=%v", st, err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("unlike method = %s, want DELETE", gotMethod)
	}
}

func TestRate_SendsBodyAndValidates(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.RateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Rating != 4 {
			t.Errorf("bad rate body: %+v err=%v", req, err)
		}
		rating := req.Rating
		_ = json.NewEncoder(w).Encode(types.InteractionState{
			UserState: &types.UserEntityState{UserRating: &rating},
		})
	}))
	defer srv.Close()

	key := types.EntityKey{Type: types.EntityTopic, ID: "t1"}

	st, err := Rate(context.Background(), srv.Client(), srv.URL, key, 4, "")
	if err != nil || st.UserState.UserRating == nil || *st.UserState.UserRating != 4 {
		t.Fatalf("rate: st=%+v err=%v", st, err)
	}

	if _, err := Rate(context.Background(), srv.Client(), srv.URL, key, 9, ""); err == nil {
		t.Fatal("out-of-range rating accepted")
	}
}

func TestRecordView_CarriesToken(t *testing.T) {
	t.Parallel()
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(ParticipationTokenHeader)
		_ = json.NewEncoder(w).Encode(types.InteractionState{
			Metrics: &types.Metrics{ViewCount: 12},
		})
	}))
	defer srv.Close()

	key := types.EntityKey{Type: types.EntityDiscussion, ID: "d1"}
	st, err := RecordView(context.Background(), srv.Client(), srv.URL, key, "tok-d1")
	if err != nil || st.Metrics.ViewCount != 12 {
		t.Fatalf("view: st=%+v err=%v", st, err)
	}
	if gotToken != "tok-d1" {
		t.Fatalf("token header = %q, want tok-d1", gotToken)
	}
}
