package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/casekeeper/internal/client/models"
	"github.com/dmitrijs2005/casekeeper/internal/logging"
	"github.com/google/uuid"
)

// TokenCookieName is the cookie carrying the session credential.
const TokenCookieName = "token"

const requestIDHeader = "X-Request-ID"

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for the API rooted at baseURL. Endpoint
// paths are resolved relative to it, so baseURL should end with '/'.
// The underlying http.Client has no timeout; callers bound calls with ctx.
func NewHTTPClient(baseURL string, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}
	return &HTTPClient{baseURL: u, http: &http.Client{}, log: log}, nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) Login(ctx context.Context, in models.LoginInput) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "auth/login", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "auth/logout", nil, nil, nil)
}

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterInput) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "auth/register", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateCase(ctx context.Context, in models.CaseInput) (*models.CaseResponse, error) {
	var resp models.CaseResponse
	if err := c.do(ctx, http.MethodPost, "cases/", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateCase(ctx context.Context, id string, in models.CaseInput) (*models.CaseResponse, error) {
	var resp models.CaseResponse
	if err := c.do(ctx, http.MethodPatch, casePath(id), nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteCase(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, casePath(id), nil, nil, nil)
}

func (c *HTTPClient) GetCase(ctx context.Context, id string) (*models.CaseResponse, error) {
	var resp models.CaseResponse
	if err := c.do(ctx, http.MethodGet, casePath(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListCases(ctx context.Context, page, limit int) (*models.CasesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var resp models.CasesResponse
	if err := c.do(ctx, http.MethodGet, "cases", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) TestCase(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodGet, casePath(id)+"/test", nil, nil, nil)
}

// casePath keeps id a single path segment. Dot-only ids are escaped too,
// otherwise reference resolution would treat them as "." or "..".
func casePath(id string) string {
	seg := url.PathEscape(id)
	if id == "." || id == ".." {
		seg = strings.ReplaceAll(seg, ".", "%2E")
	}
	return "cases/" + seg
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("build request path: %w", err)
	}
	if query != nil {
		ref.RawQuery = query.Encode()
	}
	target := c.baseURL.ResolveReference(ref)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	if token := c.currentToken(); token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	}

	log := c.log.With("method", method, "path", target.Path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, data []byte) error {
	apiErr := &APIError{StatusCode: status}
	var body models.GenericResponse
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Message
		apiErr.Detail = body.Detail
	}
	return apiErr
}
