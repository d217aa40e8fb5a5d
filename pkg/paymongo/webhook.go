package paymongo

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingSignature = errors.New("missing Paymongo-Signature header")
	ErrBadSignature     = errors.New("webhook signature mismatch")
	ErrMalformedEvent   = errors.New("webhook payload missing event type")
)

// Event is the webhook envelope. The payment metadata sits two
// attribute levels deep, mirroring the gateway's payload.
type Event struct {
	Data struct {
		Attributes struct {
			Type string `json:"type"`
			Data struct {
				Attributes struct {
					Metadata Metadata `json:"metadata"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"attributes"`
	} `json:"data"`
}

func (e *Event) Type() string {
	return e.Data.Attributes.Type
}

func (e *Event) Metadata() Metadata {
	return e.Data.Attributes.Data.Attributes.Metadata
}

func ParseEvent(payload []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(payload, &e); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}
	if e.Type() == "" {
		return nil, ErrMalformedEvent
	}
	return &e, nil
}

// VerifyWebhook checks the Paymongo-Signature header
// ("t=<ts>,te=<test-sig>,li=<live-sig>") against an HMAC-SHA256 of
// "<ts>.<payload>" keyed with the webhook secret. Either the test or
// the live signature may match.
func (c *Client) VerifyWebhook(payload []byte, header string) error {
	if header == "" {
		return ErrMissingSignature
	}

	var ts, te, li string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts = v
		case "te":
			te = v
		case "li":
			li = v
		}
	}
	if ts == "" || (te == "" && li == "") {
		return ErrMissingSignature
	}

	mac := hmac.New(sha256.New, []byte(c.WebhookSecret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	want := hex.EncodeToString(mac.Sum(nil))

	if hmac.Equal([]byte(want), []byte(te)) || hmac.Equal([]byte(want), []byte(li)) {
		return nil
	}
	return ErrBadSignature
}
