package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/loomworks/loomctl/internal/client/models"
	"github.com/loomworks/loomctl/internal/logging"
)

const statusSuccess = "success"

// HTTPClient talks JSON over HTTP to the Loom service. The session credential
// is a server-set cookie kept in the client's jar; callers never see it.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	stream  *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. All regular calls are
// bounded by timeout; log streaming uses a separate client without a timeout
// (the jar is shared, so streams are authenticated by the same session).
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
		stream:  &http.Client{Jar: jar},
		log:     log,
	}, nil
}

// envelope is the JSON wrapper every Loom endpoint responds with.
type envelope struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", &loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) FetchProfile(ctx context.Context) (*models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil)
	if err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, &CallError{Status: http.StatusOK, Err: errors.New("profile payload missing")}
	}
	return env.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	return err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/health", nil)
	return err
}

// StreamJobLog opens the server-sent-events log stream of a job.
func (c *HTTPClient) StreamJobLog(ctx context.Context, jobID string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/jobs/"+url.PathEscape(jobID)+"/log", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.stream.Do(req)
	if err != nil {
		return nil, c.wireError(ctx, err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, c.statusError(resp.StatusCode, body)
	}
	return resp.Body, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	c.stream.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.wireError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CallError{Network: true, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp.StatusCode, data)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &CallError{Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if env.Status != statusSuccess {
		return nil, &CallError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected response status %q", env.Status)}
	}
	return &env, nil
}

// wireError wraps a failure that produced no server response. Cancellation by
// the caller is not a connectivity verdict, so it does not set Network.
func (c *HTTPClient) wireError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return &CallError{Err: err}
	}
	return &CallError{Network: true, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
}

func (c *HTTPClient) statusError(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &CallError{Status: status, Err: ErrUnauthorized}
	default:
		msg := serverMessage(body)
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &CallError{Status: status, Err: fmt.Errorf("server error: %s", msg)}
	}
}

func serverMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
