package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// ErrDisabled is returned by Send when the client has no API key or from address.
var ErrDisabled = errors.New("email client is disabled")

// Client sends plain-text notification emails through Resend.
type Client struct {
	client      *resend.Client
	enabled     bool
	fromAddress string
}

// Config holds the email client configuration
type Config struct {
	APIKey      string
	FromAddress string
	// BaseURL overrides the Resend API endpoint (tests, proxies).
	BaseURL string
	Timeout time.Duration
}

// NewClient builds a client. Missing key or from address yields a disabled client,
// not an error.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.FromAddress == "" {
		return &Client{enabled: false}, nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resend.NewCustomClient(&http.Client{Timeout: timeout}, cfg.APIKey)

	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid email base URL: %w", err)
		}
		client.BaseURL = u
	}

	return &Client{
		client:      client,
		enabled:     true,
		fromAddress: cfg.FromAddress,
	}, nil
}

// IsEnabled returns whether the email client is enabled
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// FromAddress returns the sender address
func (c *Client) FromAddress() string {
	return c.fromAddress
}

// Send delivers a plain-text email and returns the provider message id.
func (c *Client) Send(ctx context.Context, to, subject, body string) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}

	params := &resend.SendEmailRequest{
		From:    c.fromAddress,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return sent.Id, nil
}
