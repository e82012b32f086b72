// Package api implements the HTTP client for the glot snippets and run
// services.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/ports"
)

const (
	defaultSnippetsURL = "https://snippets.glot.io"
	defaultRunURL      = "https://run.glot.io"
	requestTimeout     = 30 * time.Second
)

// Client talks to the glot API. Every request carries the JSON content
// type and a "Token" authorization header; a client without a token
// refuses to issue any request at all.
type Client struct {
	snippetsURL string
	runURL      string
	token       string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client from the loaded configuration.
func New(cfg domain.Config, opts ...Option) *Client {
	c := &Client{
		snippetsURL: strings.TrimRight(cfg.API.SnippetsURL, "/"),
		runURL:      strings.TrimRight(cfg.API.RunURL, "/"),
		token:       cfg.Token,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
	if c.snippetsURL == "" {
		c.snippetsURL = defaultSnippetsURL
	}
	if c.runURL == "" {
		c.runURL = defaultRunURL
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// snippetBody is the wire form for create and update.
type snippetBody struct {
	Language string               `json:"language"`
	Title    string               `json:"title"`
	Public   bool                 `json:"public"`
	Files    []domain.SnippetFile `json:"files"`
}

func draftBody(draft domain.SnippetDraft) snippetBody {
	return snippetBody{
		Language: draft.Language,
		Title:    draft.Title,
		Public:   draft.Public,
		Files:    []domain.SnippetFile{{Name: draft.Filename, Content: draft.Content}},
	}
}

// ListSnippets returns the snippet summaries owned by the token's user.
func (c *Client) ListSnippets(ctx context.Context) ([]domain.Snippet, error) {
	var snippets []domain.Snippet
	if err := c.do(ctx, http.MethodGet, c.snippetsURL+"/snippets", nil, &snippets); err != nil {
		return nil, err
	}
	return snippets, nil
}

// GetSnippet fetches a full snippet including its file contents.
func (c *Client) GetSnippet(ctx context.Context, id string) (domain.Snippet, error) {
	var snippet domain.Snippet
	err := c.do(ctx, http.MethodGet, c.snippetURL(id), nil, &snippet)
	return snippet, err
}

// CreateSnippet creates a snippet; the server assigns the id.
func (c *Client) CreateSnippet(ctx context.Context, draft domain.SnippetDraft) (domain.Snippet, error) {
	var snippet domain.Snippet
	err := c.do(ctx, http.MethodPost, c.snippetsURL+"/snippets", draftBody(draft), &snippet)
	return snippet, err
}

// UpdateSnippet replaces a snippet wholesale (PUT semantics).
func (c *Client) UpdateSnippet(ctx context.Context, id string, draft domain.SnippetDraft) (domain.Snippet, error) {
	var snippet domain.Snippet
	err := c.do(ctx, http.MethodPut, c.snippetURL(id), draftBody(draft), &snippet)
	return snippet, err
}

// DeleteSnippet removes a snippet. Deleting an already-deleted id
// surfaces domain.ErrNotFound.
func (c *Client) DeleteSnippet(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.snippetURL(id), nil, nil)
}

// RunCode executes a run request against /languages/{language}/{version}.
func (c *Client) RunCode(ctx context.Context, req domain.RunRequest) (domain.RunResult, error) {
	endpoint := fmt.Sprintf("%s/languages/%s/%s",
		c.runURL, url.PathEscape(req.Language), url.PathEscape(req.Version))
	var result domain.RunResult
	err := c.do(ctx, http.MethodPost, endpoint, req, &result)
	return result, err
}

func (c *Client) snippetURL(id string) string {
	return c.snippetsURL + "/snippets/" + url.PathEscape(id)
}

// do issues one request and decodes the response into out (skipped when
// out is nil). Error mapping: missing token before any I/O, transport
// failures, 401/403, 404, other non-2xx, then malformed JSON.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	if c.token == "" {
		return domain.ErrMissingToken
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("glot: marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("glot: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	op := method + " " + endpoint
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, resp.Status)
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return parseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.DecodeError{Op: op, Err: err}
	}
	return nil
}

func parseError(resp *http.Response) *domain.APIError {
	apiErr := &domain.APIError{StatusCode: resp.StatusCode}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

var _ ports.SnippetService = (*Client)(nil)
