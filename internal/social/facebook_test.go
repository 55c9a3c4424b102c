package social

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFacebookExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me" {
			t.Errorf("expected /me, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("access_token"); got != "fb-token" {
			t.Errorf("expected access_token fb-token, got %q", got)
		}
		json.NewEncoder(w).Encode(facebookProfile{
			ID:        "fb-9",
			Email:     "a@x.com",
			FirstName: "John",
			LastName:  "Doe",
		})
	}))
	defer srv.Close()

	v := NewFacebookVerifier(srv.URL)
	identity, err := v.Exchange(context.Background(), "fb-token", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "fb-9" || identity.Email != "a@x.com" {
		t.Errorf("unexpected identity %+v", identity)
	}
}

func TestFacebookExchange_RejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	v := NewFacebookVerifier(srv.URL)
	if _, err := v.Exchange(context.Background(), "bad", ""); err == nil {
		t.Fatal("expected error for rejected token")
	}
}

func TestFacebookExchange_EmptyProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(facebookProfile{})
	}))
	defer srv.Close()

	v := NewFacebookVerifier(srv.URL)
	if _, err := v.Exchange(context.Background(), "tok", ""); err == nil {
		t.Fatal("expected error for profile without id")
	}
}

func TestFacebookProvider(t *testing.T) {
	if got := NewFacebookVerifier("https://graph.facebook.com/v19.0").Provider(); got != "facebook" {
		t.Errorf("expected facebook, got %s", got)
	}
}
