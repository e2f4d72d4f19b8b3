// Package emailoctopus adds waitlist sign-ups to an EmailOctopus list.
package emailoctopus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/lixi-remit/lixi-landing/pkg/errors"
	"github.com/lixi-remit/lixi-landing/pkg/utils"
)

const (
	DefaultBaseURL = "https://emailoctopus.com/api/1.6"
	DefaultTimeout = 10 * time.Second

	statusSubscribed = "SUBSCRIBED"
	maxErrorBody     = 4 << 10
)

var ErrNotConfigured = errors.New("emailoctopus: api key or list id not configured")

type Config struct {
	APIKey     string
	ListID     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func ConfigFromEnv() Config {
	return Config{
		APIKey:  utils.GetEnvTrimmed("EMAIL_OCTOPUS_API_KEY"),
		ListID:  utils.GetEnvTrimmed("EMAIL_OCTOPUS_LIST_ID"),
		BaseURL: utils.GetEnvTrimmedOrDefault("EMAIL_OCTOPUS_BASE_URL", DefaultBaseURL),
		Timeout: utils.GetEnvDuration("EMAIL_OCTOPUS_TIMEOUT", DefaultTimeout),
	}
}

// APIError is returned when EmailOctopus answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("emailoctopus: unexpected status %d: %s", e.StatusCode, e.Body)
}

type contactRequest struct {
	APIKey       string            `json:"api_key"`
	EmailAddress string            `json:"email_address"`
	Fields       map[string]string `json:"fields"`
	Status       string            `json:"status"`
}

type Client struct {
	apiKey     string
	listID     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		listID:     strings.TrimSpace(cfg.ListID),
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != "" && c.listID != ""
}

// Subscribe makes a single attempt to add the contact to the list.
func (c *Client) Subscribe(ctx context.Context, email, name string) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(contactRequest{
		APIKey:       c.apiKey,
		EmailAddress: email,
		Fields:       map[string]string{"FirstName": name},
		Status:       statusSubscribed,
	})
	if err != nil {
		return fmt.Errorf("emailoctopus: encode contact: %w", err)
	}

	endpoint := c.baseURL + "/lists/" + url.PathEscape(c.listID) + "/contacts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("emailoctopus: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("mailing list request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
