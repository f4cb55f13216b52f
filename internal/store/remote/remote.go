// Package remote implements the notes store against a REST service:
//
//	GET    {base}/notes
//	POST   {base}/notes
//	PUT    {base}/notes/{id}
//	DELETE {base}/notes/{id}
package remote

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

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/store"
)

// maxErrorBody caps how much of a failed response ends up in RequestError.
const maxErrorBody = 64 << 10

var _ store.Store = (*Client)(nil)

// Client is remote-mode persistence. It does no retries.
type Client struct {
	base string
	http *http.Client
	log  logrus.FieldLogger
	now  func() time.Time
}

type Option func(*Client)

// WithHTTPClient overrides the default client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New returns a client for baseURL; a trailing slash is dropped.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{Timeout: 10 * time.Second},
		log:  logrus.StandardLogger(),
		now:  time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL is the normalized base the client talks to.
func (c *Client) BaseURL() string { return c.base }

type notePayload struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updatedAt"`
}

func notePath(id string) string {
	return "/notes/" + url.PathEscape(id)
}

// do sends one JSON request. It returns false when the answer carried no
// body (204 or empty), in which case out is left untouched.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("json marshal: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":  method,
		"path":    path,
		"status":  res.StatusCode,
		"latency": time.Since(start),
	}).Debug("remote call")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		txt, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return false, &store.RequestError{StatusCode: res.StatusCode, Body: string(txt)}
	}
	if res.StatusCode == http.StatusNoContent || out == nil {
		return false, nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return true, nil
}

func (c *Client) List(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if _, err := c.do(ctx, http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

func (c *Client) Create(ctx context.Context, title, content string) (*model.Note, error) {
	in := notePayload{Title: model.NormalizeTitle(title), Content: content, UpdatedAt: model.Millis(c.now())}
	var n model.Note
	ok, err := c.do(ctx, http.MethodPost, "/notes", in, &n)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}

func (c *Client) Update(ctx context.Context, id, title, content string) (*model.Note, error) {
	in := notePayload{Title: model.NormalizeTitle(title), Content: content, UpdatedAt: model.Millis(c.now())}
	var n model.Note
	ok, err := c.do(ctx, http.MethodPut, notePath(id), in, &n)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, notePath(id), nil, nil)
	return err
}
