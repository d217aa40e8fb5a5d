package paymongo

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
)

func sign(secret string, ts string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts + "."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhook(t *testing.T) {
	c := &Client{WebhookSecret: "whsk_test"}
	payload := []byte(`{"data":{}}`)
	good := sign("whsk_test", "1700000000", payload)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"valid test signature", "t=1700000000,te=" + good, nil},
		{"valid live signature", "t=1700000000,te=deadbeef,li=" + good, nil},
		{"wrong signature", "t=1700000000,te=" + sign("other", "1700000000", payload), ErrBadSignature},
		{"wrong timestamp", "t=1700000001,te=" + good, ErrBadSignature},
		{"missing header", "", ErrMissingSignature},
		{"missing signatures", "t=1700000000", ErrMissingSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.VerifyWebhook(payload, tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("VerifyWebhook = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	payload := []byte(`{
		"data": {
			"attributes": {
				"type": "checkout_session.payment.paid",
				"data": {
					"attributes": {
						"metadata": {"type": "reservation", "id": "42"}
					}
				}
			}
		}
	}`)

	event, err := ParseEvent(payload)
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	if event.Type() != EventPaymentPaid {
		t.Errorf("Type = %q, want %q", event.Type(), EventPaymentPaid)
	}
	md := event.Metadata()
	if md.Type != "reservation" || md.ID != "42" {
		t.Errorf("Metadata = %+v, want reservation/42", md)
	}
}

func TestParseEventRejectsGarbage(t *testing.T) {
	if _, err := ParseEvent([]byte("not json")); err == nil {
		t.Error("ParseEvent accepted garbage")
	}
}

func TestParseEventRejectsMissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty object", `{}`},
		{"empty data", `{"data":{}}`},
		{"empty attributes", `{"data":{"attributes":{}}}`},
		{"empty type", `{"data":{"attributes":{"type":""}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEvent([]byte(tt.payload)); !errors.Is(err, ErrMalformedEvent) {
				t.Errorf("ParseEvent(%s) err = %v, want ErrMalformedEvent", tt.payload, err)
			}
		})
	}
}

func TestServiceFee(t *testing.T) {
	tests := []struct {
		amount int64
		want   int64
	}{
		{100, 250}, // 10000 centavos * 0.025
		{180, 450},
		{1, 2},   // 2.5 rounds to even
		{49, 122}, // 122.5 rounds to even
		{51, 128}, // 127.5 rounds to even
		{0, 0},
	}
	for _, tt := range tests {
		if got := ServiceFee(tt.amount); got != tt.want {
			t.Errorf("ServiceFee(%d) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}
