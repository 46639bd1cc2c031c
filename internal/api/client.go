package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

const apiPrefix = "/api/v1"

// Session is the slice of the session manager the client needs: token reads,
// the silent-refresh write, and the wipe on irrecoverable auth failure.
type Session interface {
	AccessToken() string
	RefreshToken() string
	Locale() string
	SetAccessToken(access, refresh string)
	Clear()
}

// Client issues authenticated JSON requests and transparently recovers from
// access-token expiry. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	session Session

	// onSessionExpired fires after a failed refresh has cleared the session;
	// the navigation analogue of the browser redirect to /login.
	onSessionExpired func()

	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshResult
}

type refreshResult struct {
	token string
	err   error
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithSessionExpiredHook(hook func()) Option {
	return func(c *Client) { c.onSessionExpired = hook }
}

func New(baseURL string, sess Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + apiPrefix,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: sess,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

// GetPage is Get plus the envelope's pagination meta, for paginated listings.
// Meta is nil when the server sends none.
func (c *Client) GetPage(ctx context.Context, path string, query url.Values, out any) (*models.PaginationMeta, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, body, out)
	return err
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*models.PaginationMeta, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	retried := false
	for {
		resp, respBody, err := c.send(ctx, method, path, query, payload)
		if err != nil {
			return nil, err
		}

		// A 401 on a not-yet-retried request enters the refresh protocol;
		// a second 401 on the same logical request is final. Without a stored
		// refresh token there is nothing to recover with, so the 401 is
		// surfaced like any other failure.
		if resp.StatusCode == http.StatusUnauthorized && !retried && c.session.RefreshToken() != "" {
			if _, err := c.refreshAccessToken(ctx); err != nil {
				return nil, err
			}
			retried = true
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, decodeError(resp.StatusCode, respBody)
		}
		if out == nil || len(respBody) == 0 || resp.StatusCode == http.StatusNoContent {
			return nil, nil
		}

		var env models.Envelope
		if err := json.Unmarshal(respBody, &env); err != nil {
			return nil, &Error{Status: resp.StatusCode, Message: "Invalid server response"}
		}
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return env.Meta, nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &Error{Status: resp.StatusCode, Message: "Invalid server response"}
		}
		return env.Meta, nil
	}
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, []byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	locale := c.session.Locale()
	if locale == "" {
		locale = "pt-BR"
	}
	req.Header.Set("Accept-Language", locale)
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, networkError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, networkError()
	}
	return resp, respBody, nil
}

// refreshAccessToken guarantees at most one outstanding refresh call. The
// first caller becomes the leader; everyone failing while it is in flight
// suspends on a channel and is released in registration order once the shared
// refresh settles.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.refreshing {
		ch := make(chan refreshResult, 1)
		c.waiters = append(c.waiters, ch)
		c.mu.Unlock()

		select {
		case res := <-ch:
			return res.token, res.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	c.refreshing = true
	c.mu.Unlock()

	token, err := c.doRefresh(ctx)
	if err != nil {
		c.session.Clear()
	}

	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.refreshing = false
	c.mu.Unlock()

	for _, ch := range waiters {
		ch <- refreshResult{token: token, err: err}
	}

	if err != nil && c.onSessionExpired != nil {
		c.onSessionExpired()
	}
	return token, err
}

func (c *Client) doRefresh(ctx context.Context) (string, error) {
	refresh := c.session.RefreshToken()
	if refresh == "" {
		return "", sessionExpiredError()
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refresh})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", sessionExpiredError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", sessionExpiredError()
	}

	var env models.Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return "", sessionExpiredError()
	}
	var tokens models.AuthTokens
	if err := json.Unmarshal(env.Data, &tokens); err != nil || tokens.AccessToken == "" {
		return "", sessionExpiredError()
	}

	c.session.SetAccessToken(tokens.AccessToken, tokens.RefreshToken)
	return tokens.AccessToken, nil
}
