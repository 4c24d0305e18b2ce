// Package gateway wraps the external payment-gateway collaborator.  The
// core only needs one operation from it: turning an amount in minor
// currency units into a client-usable payment authorization.  The
// returned client secret is handed straight back to the client and is
// not state this service owns.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Intent is the subset of the gateway response the API exposes.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentIntents creates payment authorizations with an external
// gateway.  Handlers depend on this interface; tests inject a stub.
type PaymentIntents interface {
	CreateIntent(ctx context.Context, amountCents int64) (Intent, error)
}

// StripeClient implements PaymentIntents against the Stripe REST API.
// Requests are form-encoded per the Stripe wire format and authenticated
// with the secret key as a bearer token.
type StripeClient struct {
	BaseURL string // e.g. https://api.stripe.com; tests point this at a local server
	Secret  string
	HTTP    *http.Client
}

func NewStripeClient(baseURL, secret string) *StripeClient {
	return &StripeClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Secret:  secret,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateIntent creates a card payment intent in USD for the given amount
// in cents and returns its ID and client secret.
func (s *StripeClient) CreateIntent(ctx context.Context, amountCents int64) (Intent, error) {
	if amountCents <= 0 {
		return Intent{}, fmt.Errorf("invalid amount %d", amountCents)
	}
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.BaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return Intent{}, err
	}
	req.Header.Set("Authorization", "Bearer "+s.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return Intent{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Intent{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Intent{}, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var in Intent
	if err := json.Unmarshal(body, &in); err != nil {
		return Intent{}, fmt.Errorf("decode gateway response: %w", err)
	}
	if in.ClientSecret == "" {
		return Intent{}, fmt.Errorf("gateway response missing client_secret")
	}
	return in, nil
}

var _ PaymentIntents = (*StripeClient)(nil)
