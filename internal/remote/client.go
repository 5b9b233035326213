// Package remote is a client for the presenter's remote control API.
package remote

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

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/server"
)

// Controller drives a running presenter. *Client implements it.
type Controller interface {
	State(ctx context.Context) (navigation.View, error)
	Next(ctx context.Context) (server.MutationResponse, error)
	Prev(ctx context.Context) (server.MutationResponse, error)
	GoToSlide(ctx context.Context, id string) (server.MutationResponse, error)
	GoToSection(ctx context.Context, id deck.SectionID) (server.MutationResponse, error)
	TogglePause(ctx context.Context) (server.MutationResponse, error)
	TogglePresentationMode(ctx context.Context) (server.MutationResponse, error)
}

// Ensure Client implements Controller at compile time.
var _ Controller = (*Client)(nil)

// Client talks to the presenter HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:7690"
	defaultUserAgent = "covid-presenter/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// State fetches the current navigation view.
func (c *Client) State(ctx context.Context) (navigation.View, error) {
	var view navigation.View
	if err := c.do(ctx, http.MethodGet, "/api/state", nil, &view); err != nil {
		return navigation.View{}, err
	}
	return view, nil
}

// Slides lists the deck in presentation order.
func (c *Client) Slides(ctx context.Context) ([]deck.Slide, error) {
	var slides []deck.Slide
	if err := c.do(ctx, http.MethodGet, "/api/slides", nil, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

// Sections lists the sections with their slide ids.
func (c *Client) Sections(ctx context.Context) ([]server.SectionEntry, error) {
	var sections []server.SectionEntry
	if err := c.do(ctx, http.MethodGet, "/api/sections", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// Next advances one slide.
func (c *Client) Next(ctx context.Context) (server.MutationResponse, error) {
	return c.mutate(ctx, "/api/next")
}

// Prev goes back one slide.
func (c *Client) Prev(ctx context.Context) (server.MutationResponse, error) {
	return c.mutate(ctx, "/api/prev")
}

// GoToSlide jumps to a slide by id.
func (c *Client) GoToSlide(ctx context.Context, id string) (server.MutationResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return server.MutationResponse{}, fmt.Errorf("slide id required")
	}
	return c.mutate(ctx, "/api/slides/"+url.PathEscape(id))
}

// GoToSection jumps to the first slide of a section.
func (c *Client) GoToSection(ctx context.Context, id deck.SectionID) (server.MutationResponse, error) {
	trimmed := strings.TrimSpace(string(id))
	if trimmed == "" {
		return server.MutationResponse{}, fmt.Errorf("section id required")
	}
	return c.mutate(ctx, "/api/sections/"+url.PathEscape(trimmed))
}

// TogglePause flips the pause flag.
func (c *Client) TogglePause(ctx context.Context) (server.MutationResponse, error) {
	return c.mutate(ctx, "/api/pause")
}

// TogglePresentationMode flips presentation mode.
func (c *Client) TogglePresentationMode(ctx context.Context) (server.MutationResponse, error) {
	return c.mutate(ctx, "/api/presentation-mode")
}

// Gesture sends a physical gesture for the server to resolve.
func (c *Client) Gesture(ctx context.Context, gesture, direction string) (server.GestureResponse, error) {
	body, err := json.Marshal(server.GestureRequest{Gesture: gesture, Direction: direction})
	if err != nil {
		return server.GestureResponse{}, fmt.Errorf("encode gesture: %w", err)
	}
	var payload server.GestureResponse
	if err := c.do(ctx, http.MethodPost, "/api/gesture", bytes.NewReader(body), &payload); err != nil {
		return server.GestureResponse{}, err
	}
	return payload, nil
}

func (c *Client) mutate(ctx context.Context, path string) (server.MutationResponse, error) {
	var payload server.MutationResponse
	if err := c.do(ctx, http.MethodPost, path, nil, &payload); err != nil {
		return server.MutationResponse{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var apiErr server.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api %s returned status %d: %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
