// Package gateway holds the thin client for the Stripe payment API.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUpstream marks any gateway-side failure, including unknown sessions.
var ErrUpstream = errors.New("payment gateway error")

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type Session struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status"`
	PaymentIntent *PaymentIntent `json:"payment_intent"`
}

type Client struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, currency string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		currency: currency,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreatePaymentIntent creates a card payment intent for the given amount in
// the client's configured currency.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", c.currency)
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var intent PaymentIntent
	if err := c.do(req, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// RetrieveSession fetches a checkout session with its payment intent expanded.
func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*Session, error) {
	query := url.Values{}
	query.Add("expand[]", "payment_intent")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/checkout/sessions/"+url.PathEscape(sessionID)+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := c.do(req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, gatewayErrorMessage(body))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return nil
}

func gatewayErrorMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return string(body)
}
