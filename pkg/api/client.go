// Package api — общее HTTP-ядро для всех фасадов клиента corkroom:
// базовый URL, цепочка middleware (request id, bearer, session guard)
// и разбор ошибок сервера.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/corkroom/client-go/pkg/session"
)

const (
	envBaseURL     = "API_URL"
	defaultBaseURL = "http://localhost:8000"

	// все ручки сервера живут под этим префиксом
	apiPrefix = "/api"

	maxErrBody = 64 << 10
)

type Options struct {
	// BaseURL — адрес сервера без /api. Пусто — берём $API_URL,
	// дальше дефолт http://localhost:8000.
	BaseURL string
	Timeout time.Duration

	// Store — где живёт access_token. Пусто — in-memory.
	Store session.Store

	// OnSessionExpired — вызывается после чистки стора на 401.
	// В интерактивном клиенте здесь редирект на логин.
	OnSessionExpired func()

	// HTTPClient — свой транспорт (прокси, TLS). По умолчанию http.Client{}.
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
}

func New(opts Options) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(os.Getenv(envBaseURL), "/")
	}
	if base == "" {
		base = defaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api client: invalid base url %q", base)
	}

	store := opts.Store
	if store == nil {
		store = session.NewMemoryStore()
	}

	var httpc http.Client
	if opts.HTTPClient != nil {
		httpc = *opts.HTTPClient
	}
	if opts.Timeout > 0 {
		httpc.Timeout = opts.Timeout
	}
	rt := httpc.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	httpc.Transport = chain(rt,
		withRequestID(),
		withBearer(store),
		withSessionGuard(store, opts.OnSessionExpired),
	)

	return &Client{
		baseURL: base,
		http:    &httpc,
		store:   store,
	}, nil
}

// Store — стор сессии, которым пользуется клиент (нужен фасаду auth).
func (c *Client) Store() session.Store { return c.store }

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", bytes.NewReader(body), out)
}

// PostForm — для ручек, которые ждут form-encoded тело (логин).
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, nil, "application/x-www-form-urlencoded", body, out)
}

// Patch — частичное обновление: в теле только переданные поля,
// дефолты за пропущенные не досылаем.
func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPatch, path, nil, "application/json", bytes.NewReader(body), out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, nil)
}

// HealthStatus — ответ GET /health.
type HealthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Service       string  `json:"service"`
}

// Health — healthcheck сервера; единственная ручка вне префикса /api.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("api: new request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("api: GET /health: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return HealthStatus{}, parseAPIError(resp.StatusCode, data)
	}

	var out HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return HealthStatus{}, fmt.Errorf("api: decode response: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("api: new request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// сетевые ошибки наверх как есть, без ретраев
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return parseAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}
