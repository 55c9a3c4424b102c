package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lunahq/accounts-api/internal/models"
)

// FacebookVerifier resolves a user access token through the Graph API
// profile endpoint.
type FacebookVerifier struct {
	graphURL   string
	httpClient *http.Client
}

func NewFacebookVerifier(graphURL string) *FacebookVerifier {
	return &FacebookVerifier{
		graphURL:   strings.TrimRight(graphURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *FacebookVerifier) Provider() string {
	return models.ProviderFacebook
}

type facebookProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (v *FacebookVerifier) Exchange(ctx context.Context, token, _ string) (*Identity, error) {
	endpoint := v.graphURL + "/me?fields=id,email,first_name,last_name&access_token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify facebook token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("facebook graph returned status %d", resp.StatusCode)
	}

	var profile facebookProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode graph response: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("facebook profile has no id")
	}

	return &Identity{
		ID:        profile.ID,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}, nil
}
