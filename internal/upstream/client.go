// Package upstream is the HTTP client for the health ministry dashboard API.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/david-aftergut/ILHealth-mcp/internal/logger"
)

type Config struct {
	MetadataBaseURL string
	DataBaseURL     string
	Timeout         time.Duration
}

// Client issues synchronous GETs against the dashboard API. It holds no
// per-call state; one instance is shared by all tools.
type Client struct {
	http         *resty.Client
	metadataBase string
	dataBase     string
	log          *slog.Logger
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:         httpClient,
		metadataBase: cfg.MetadataBaseURL,
		dataBase:     cfg.DataBaseURL,
		log:          logger.ForComponent("upstream"),
	}
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.Code, e.URL)
}

// Metadata fetches the metadata document for a subject.
func (c *Client) Metadata(ctx context.Context, subject string) (interface{}, error) {
	return c.getJSON(ctx, fmt.Sprintf("%s/%s", c.metadataBase, subject))
}

// Data fetches the payload behind an endpoint name. The endpoint name alone
// determines the URL.
func (c *Client) Data(ctx context.Context, endPointName string) (interface{}, error) {
	return c.getJSON(ctx, fmt.Sprintf("%s/%s", c.dataBase, endPointName))
}

func (c *Client) getJSON(ctx context.Context, url string) (interface{}, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		c.log.Error("upstream request failed", "url", url, "error", err)
		return nil, fmt.Errorf("upstream request %s: %w", url, err)
	}

	if resp.IsError() {
		c.log.Error("upstream returned error status", "url", url, "status", resp.StatusCode())
		return nil, &StatusError{Code: resp.StatusCode(), URL: url}
	}

	body, err := decodeBody(resp.Body(), resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode body from %s: %w", url, err)
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse response from %s: %w", url, err)
	}

	c.log.Debug("upstream request ok", "url", url, "bytes", len(body))
	return parsed, nil
}
