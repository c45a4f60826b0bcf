package client

import (
	"Recipe-Share/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const DefaultTimeout = 15 * time.Second

type (
	// Client talks to the Recipe Share API. It satisfies feed.Backend for the
	// signed in user.
	Client struct {
		baseURL string
		timeout time.Duration

		mu      sync.RWMutex
		session *domain.AuthResponse
	}

	Option func(*Client)

	envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithSession restores a session saved earlier.
func WithSession(s *domain.AuthResponse) Option {
	return func(c *Client) {
		c.session = s
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the signed in user, or nil.
func (c *Client) Session() *domain.AuthResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Client) SetSession(s *domain.AuthResponse) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

func (c *Client) token() string {
	if s := c.Session(); s != nil {
		return s.Token
	}
	return ""
}

// checkViewer fails unless viewer is the signed in user. The server always
// acts as the token's user, so any other viewer cannot be served.
func (c *Client) checkViewer(viewer string) error {
	s := c.Session()
	if s == nil {
		return domain.ErrTokenNotFound
	}
	if s.Username != viewer {
		return domain.ErrViewerMismatch
	}
	return nil
}

// knownErrors are the errors the server reports that callers match on.
var knownErrors = []error{
	domain.ErrInvalidCredentials,
	domain.ErrEmailAlreadyUsed,
	domain.ErrUsernameTaken,
	domain.ErrWeakPassword,
	domain.ErrUserNotFound,
	domain.ErrRecipeNotFound,
	domain.ErrUnauthorizedRecipeAccess,
	domain.ErrInvalidImageFormat,
	domain.ErrImageTooLarge,
	domain.ErrInvalidCursor,
	domain.ErrSelfFavourite,
	domain.ErrUserNotAllowed,
	domain.ErrTokenNotFound,
	domain.ErrTokenInvalid,
	domain.ErrTokenExpired,
}

func remoteError(env envelope) error {
	msg := env.Error
	if msg == "" {
		msg = env.Message
	}
	for _, known := range knownErrors {
		if msg == known.Error() || strings.HasSuffix(msg, ": "+known.Error()) {
			return known
		}
	}
	return errors.New(msg)
}

// do sends one request and decodes the data of a successful response into
// out. Every failure is returned as a *domain.BackendError.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, out any) error {
	if err := ctx.Err(); err != nil {
		return &domain.BackendError{Op: op, Err: err}
	}

	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return &domain.BackendError{Op: op, Err: err}
	}
	if token := c.token(); token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		a.JSON(body)
	}
	a.Timeout(c.timeout)

	code, raw, errs := a.Bytes()
	if len(errs) > 0 {
		return &domain.BackendError{Op: op, Err: errors.Join(errs...)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &domain.BackendError{Op: op, Status: code, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if code >= fiber.StatusBadRequest || !env.Status {
		return &domain.BackendError{Op: op, Status: code, Err: remoteError(env)}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &domain.BackendError{Op: op, Status: code, Err: fmt.Errorf("decoding data: %w", err)}
		}
	}
	return nil
}

func pageQuery(author string, after *time.Time, limit int) url.Values {
	q := url.Values{}
	if author != "" {
		q.Set("author", author)
	}
	if after != nil {
		q.Set("after", domain.FormatCursor(*after))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func (c *Client) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a := fiber.Get(c.baseURL + "/api/ping")
	a.Timeout(c.timeout)
	code, _, errs := a.Bytes()
	if len(errs) > 0 {
		return &domain.BackendError{Op: "ping", Err: errors.Join(errs...)}
	}
	if code != fiber.StatusOK {
		return &domain.BackendError{Op: "ping", Status: code, Err: errors.New("unexpected status")}
	}
	return nil
}
