package social

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type appleFixture struct {
	verifier *AppleVerifier
	key      *rsa.PrivateKey
	jwksHits *atomic.Int32
}

func newAppleFixture(t *testing.T, audience string) *appleFixture {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		eBytes := []byte{byte(key.E >> 16), byte(key.E >> 8), byte(key.E)}
		json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{{
				"kid": "test-kid",
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(eBytes),
			}},
		})
	}))
	t.Cleanup(srv.Close)

	v := NewAppleVerifier(audience)
	v.jwksURL = srv.URL
	return &appleFixture{verifier: v, key: key, jwksHits: &hits}
}

func (f *appleFixture) signToken(t *testing.T, claims appleJWTClaims) string {
	t.Helper()
	headerJSON, _ := json.Marshal(map[string]string{"alg": "RS256", "kid": "test-kid"})
	claimsJSON, _ := json.Marshal(claims)
	signing := base64.RawURLEncoding.EncodeToString(headerJSON) + "." +
		base64.RawURLEncoding.EncodeToString(claimsJSON)

	hashed := sha256.Sum256([]byte(signing))
	sig, err := rsa.SignPKCS1v15(rand.Reader, f.key, crypto.SHA256, hashed[:])
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signing + "." + base64.RawURLEncoding.EncodeToString(sig)
}

func validAppleClaims() appleJWTClaims {
	return appleJWTClaims{
		Iss:   appleIssuer,
		Sub:   "apple-123",
		Aud:   "com.example.app",
		Exp:   time.Now().Add(time.Hour).Unix(),
		Email: "a@privaterelay.appleid.com",
	}
}

func TestAppleExchange(t *testing.T) {
	f := newAppleFixture(t, "com.example.app")
	token := f.signToken(t, validAppleClaims())

	identity, err := f.verifier.Exchange(context.Background(), token, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "apple-123" {
		t.Errorf("expected subject apple-123, got %s", identity.ID)
	}
	if identity.Email != "a@privaterelay.appleid.com" {
		t.Errorf("unexpected email %s", identity.Email)
	}
}

func TestAppleExchange_CachesKeys(t *testing.T) {
	f := newAppleFixture(t, "com.example.app")
	token := f.signToken(t, validAppleClaims())

	for i := 0; i < 3; i++ {
		if _, err := f.verifier.Exchange(context.Background(), token, ""); err != nil {
			t.Fatalf("exchange %d: %v", i, err)
		}
	}
	if got := f.jwksHits.Load(); got != 1 {
		t.Errorf("expected 1 JWKS fetch, got %d", got)
	}
}

func TestAppleExchange_WrongAudience(t *testing.T) {
	f := newAppleFixture(t, "com.example.app")
	claims := validAppleClaims()
	claims.Aud = "com.somebody.else"
	token := f.signToken(t, claims)

	if _, err := f.verifier.Exchange(context.Background(), token, ""); err == nil {
		t.Fatal("expected audience error")
	}
}

func TestAppleExchange_WrongIssuer(t *testing.T) {
	f := newAppleFixture(t, "com.example.app")
	claims := validAppleClaims()
	claims.Iss = "https://evil.example.com"
	token := f.signToken(t, claims)

	if _, err := f.verifier.Exchange(context.Background(), token, ""); err == nil {
		t.Fatal("expected issuer error")
	}
}

func TestAppleExchange_Expired(t *testing.T) {
	f := newAppleFixture(t, "com.example.app")
	claims := validAppleClaims()
	claims.Exp = time.Now().Add(-time.Minute).Unix()
	token := f.signToken(t, claims)

	if _, err := f.verifier.Exchange(context.Background(), token, ""); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestAppleExchange_TamperedSignature(t *testing.T) {
	f := newAppleFixture(t, "com.example.app")
	token := f.signToken(t, validAppleClaims())
	tampered := token[:len(token)-4] + "AAAA"

	if _, err := f.verifier.Exchange(context.Background(), tampered, ""); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestAppleExchange_Malformed(t *testing.T) {
	f := newAppleFixture(t, "com.example.app")
	if _, err := f.verifier.Exchange(context.Background(), "not.a-jwt", ""); err == nil {
		t.Fatal("expected format error")
	}
}

func TestAppleProvider(t *testing.T) {
	if got := NewAppleVerifier("aud").Provider(); got != "apple" {
		t.Errorf("expected apple, got %s", got)
	}
}
