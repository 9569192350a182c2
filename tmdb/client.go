// Package tmdb talks to The Movie Database API: catalog lists, search,
// item details, genre names and the video lists trailers are picked from.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/marquee-cli/marquee/auth"
	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/network"
	"github.com/marquee-cli/marquee/util"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
)

var ErrNoToken = errors.New("TMDB token is not set, run `marquee auth set` or set MARQUEE_TMDB_TOKEN")

// StatusError is returned for non-2xx answers.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tmdb: %d %s", e.Code, http.StatusText(e.Code))
	}

	return fmt.Sprintf("tmdb: %d %s", e.Code, e.Message)
}

// Temporary reports whether asking again may succeed. Client errors other
// than rate limiting are final.
func (e *StatusError) Temporary() bool {
	return e.Code >= http.StatusInternalServerError || e.Code == http.StatusTooManyRequests
}

type Client struct {
	http     *http.Client
	baseURL  string
	token    string
	language string
	region   string
	logger   log.Scope
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithLanguage(language string) Option {
	return func(c *Client) { c.language = language }
}

func WithRegion(region string) Option {
	return func(c *Client) { c.region = region }
}

// New builds a client from configuration. Options override it.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		http:     network.Client,
		baseURL:  constant.TMDBBaseURL,
		language: viper.GetString(key.TMDBLanguage),
		region:   viper.GetString(key.TMDBRegion),
		logger:   log.For("tmdb"),
	}

	if cred, ok := auth.Token().Get(); ok {
		c.token = cred.Value
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.token == "" {
		return nil, ErrNoToken
	}

	return c, nil
}

func (c *Client) Language() string {
	return c.language
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}

	if c.language != "" && query.Get("language") == "" {
		query.Set("language", c.language)
	}

	endpoint := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debugf("GET %s", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer util.Ignore(resp.Body.Close)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Code:    resp.StatusCode,
			Message: gjson.GetBytes(body, "status_message").String(),
		}
	}

	return body, nil
}
