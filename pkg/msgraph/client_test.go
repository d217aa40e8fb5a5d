package msgraph

import (
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizationURL(t *testing.T) {
	c := NewClient("client-id", "client-secret", "https://canteen.example/")

	raw := c.AuthorizationURL("state-123")
	if !strings.HasPrefix(raw, authURL) {
		t.Fatalf("url = %q, want prefix %q", raw, authURL)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	q := parsed.Query()
	if q.Get("client_id") != "client-id" {
		t.Errorf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != "https://canteen.example/callback" {
		t.Errorf("redirect_uri = %q", q.Get("redirect_uri"))
	}
	if q.Get("state") != "state-123" {
		t.Errorf("state = %q", q.Get("state"))
	}
	if !strings.Contains(q.Get("scope"), "User.Read") {
		t.Errorf("scope = %q, want User.Read", q.Get("scope"))
	}
}
