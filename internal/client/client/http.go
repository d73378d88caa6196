package client

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

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/common"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

const maxResponseBytes = 1 << 20

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        logging.Logger
}

type Option func(*HTTPClient)

// WithRateLimit caps outgoing requests at perSecond. Zero or less means
// no limit.
func WithRateLimit(perSecond float64) Option {
	return func(c *HTTPClient) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), max(1, int(perSecond)))
	}
}

// NewHTTPClient returns a Client for the API rooted at baseURL
// (e.g. "http://127.0.0.1:3001"). timeout bounds each request.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}

	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Inf, 0),
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	return req, nil
}

// do sends one request and decodes the response envelope into out.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, token, body)
	if err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}

	log := c.log.With("request_id", req.Header.Get(common.RequestIDHeaderName), "method", method, "path", path)

	if err := c.limiter.Wait(ctx); err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return &APIError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return &APIError{Kind: KindTransport, Status: resp.StatusCode, Err: err}
	}

	log.Debug(ctx, "request completed", "status", resp.StatusCode, "elapsed", time.Since(started))

	if err := decodeEnvelope(resp.StatusCode, raw, out); err != nil {
		log.Info(ctx, "request rejected", "status", resp.StatusCode, "error", err)
		return err
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/users/login", "", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, form models.RegistrationForm) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/users/register", "", form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type userData struct {
	User models.UserRecord `json:"user"`
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*models.UserRecord, error) {
	var res userData
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", token, nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (*models.UserRecord, error) {
	var res userData
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", token, patch, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	req := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{CurrentPassword: currentPassword, NewPassword: newPassword}

	return c.do(ctx, http.MethodPut, "/api/users/change-password", token, req, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), token, nil, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]models.UserRecord, error) {
	var res struct {
		Users []models.UserRecord `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users", token, nil, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}
