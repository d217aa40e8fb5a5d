package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	authURL      = "https://login.microsoftonline.com/organizations/oauth2/v2.0/authorize"
	tokenURL     = "https://login.microsoftonline.com/organizations/oauth2/v2.0/token"
	graphUserURL = "https://graph.microsoft.com/v1.0/me?$select=displayName,givenName,jobTitle,mail,department,id"
)

// Client wraps the Microsoft organizational OAuth flow and the Graph
// profile lookup used after sign-in.
type Client struct {
	OAuth   *oauth2.Config
	UserURL string
}

// UserInfo is the subset of the Graph /me payload we keep.
type UserInfo struct {
	ID          string `json:"id"`
	Mail        string `json:"mail"`
	DisplayName string `json:"displayName"`
	GivenName   string `json:"givenName"`
	JobTitle    string `json:"jobTitle"`
	Department  string `json:"department"`
}

func NewClient(clientID, clientSecret, hostURL string) *Client {
	return &Client{
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  hostURL + "callback",
			Scopes:       []string{"User.Read", "profile", "email", "openid"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		UserURL: graphUserURL,
	}
}

func (c *Client) AuthorizationURL(state string) string {
	return c.OAuth.AuthCodeURL(state)
}

// FetchUser exchanges the authorization code and reads the signed-in
// user's directory profile from Graph.
func (c *Client) FetchUser(ctx context.Context, code string) (*UserInfo, error) {
	token, err := c.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	res, err := c.OAuth.Client(ctx, token).Get(c.UserURL)
	if err != nil {
		return nil, fmt.Errorf("fetch graph profile: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("graph returned %d: %s", res.StatusCode, string(body))
	}

	var info UserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("decode graph profile: %w", err)
	}
	return &info, nil
}
