// Package resend is the HTTP client for the transactional email provider.
// One send is one POST to the provider's /emails endpoint; a 2xx response
// means accepted for delivery, not delivered.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dive-demo-tour/api/internal/config"
	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/email"
)

// placeholderKeys are values that mean "no key was ever configured". Sending
// with one of these is a configuration gap, not a transient provider error.
var placeholderKeys = map[string]bool{
	"":               true,
	"your-api-key":   true,
	"re_placeholder": true,
}

// Client sends email through the provider's HTTP API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	from       string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.EmailTimeout},
		apiURL:     cfg.EmailAPIURL,
		apiKey:     cfg.EmailAPIKey,
		from:       cfg.EmailFrom,
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// Send issues one provider call. Returns domain.ErrNotConfigured without
// calling out when the API key is missing or an obvious placeholder; any
// non-2xx response or transport failure is returned as an error with the
// provider's status and body.
func (c *Client) Send(ctx context.Context, msg email.Message) error {
	if placeholderKeys[c.apiKey] {
		return fmt.Errorf("email api key missing or placeholder: %w", domain.ErrNotConfigured)
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email provider call: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email provider status %d: %s", resp.StatusCode, body)
	}
	slog.Info("email accepted", "to", msg.To, "subject", msg.Subject, "status", resp.StatusCode, "response", string(body))
	return nil
}
