// Package social exchanges provider-issued credentials for normalized
// identities. Each verifier calls its provider's verification endpoint;
// an invalid or expired credential surfaces as a plain error that the
// auth flow treats the same as an unknown user.
package social

import "context"

// Identity is the provider-normalized profile used for login and
// account creation.
type Identity struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// Verifier validates one provider's credential. Token is the primary
// credential (ID token or access token); secondary is provider-specific
// and may be empty.
type Verifier interface {
	Provider() string
	Exchange(ctx context.Context, token, secondary string) (*Identity, error)
}
