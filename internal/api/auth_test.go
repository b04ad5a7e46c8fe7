package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ideahub/ideahub-client/internal/types"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email != "a@b.com" {
			t.Errorf("bad login body: %+v err=%v", req, err)
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1"})
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := Login(context.Background(), srv.Client(), srv.URL, "a@b.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func TestLogin_InvalidCredentialsDetail(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: "invalid credentials"})
	}))
	defer srv.Close()

	err := Login(context.Background(), srv.Client(), srv.URL, "a@b.com", "wrong")
	if err == nil || err.Error() != "invalid credentials" {
		t.Fatalf("expected server detail, got %v", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer srv.Close()

	if err := Login(context.Background(), srv.Client(), srv.URL, "", "pw"); err == nil {
		t.Fatal("empty email accepted")
	}
	if err := Login(context.Background(), srv.Client(), srv.URL, "a@b.com", ""); err == nil {
		t.Fatal("empty password accepted")
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/auth/logout" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := Logout(context.Background(), srv.Client(), srv.URL); err != nil {
		t.Fatalf("Logout: %v", err)
	}
}

func TestGetCurrentUser_Success(t *testing.T) {
	t.Parallel()
	want := types.User{ID: "u1", Email: "a@b.com", Username: "ada"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := GetCurrentUser(context.Background(), srv.Client(), srv.URL)
	if err != nil || got == nil || got.ID != "u1" || got.Username != "ada" {
		t.Fatalf("GetCurrentUser unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetCurrentUser_NoSession(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := GetCurrentUser(context.Background(), srv.Client(), srv.URL)
	if !errors.Is(err, types.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}
