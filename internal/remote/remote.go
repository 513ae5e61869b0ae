// Package remote is the HTTP quote source: a placeholder-style API where
// GET {base}/posts lists items and POST {base}/posts accepts one.
package remote

import (
	"context"
	"strings"
	"time"

	"github.com/agentstation/quotegen/internal/transport"
	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/logging"
	"github.com/agentstation/quotegen/pkg/quotes"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

var _ pkgsync.Remote = (*Client)(nil)

// Config configures the remote source.
type Config struct {
	BaseURL  string
	Token    string
	Auth     string // see transport.ParseAuthenticator
	Category string // label given to fetched quotes
	Limit    int    // maximum quotes taken per fetch, 0 for no limit
	UserID   int
	Timeout  time.Duration
}

// DefaultConfig returns the placeholder service defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:  constants.DefaultRemoteURL,
		Category: constants.DefaultRemoteCategory,
		Limit:    constants.DefaultRemoteLimit,
		UserID:   constants.DefaultRemoteUserID,
		Timeout:  constants.DefaultHTTPTimeout,
	}
}

// post is the wire shape of a placeholder item.
type post struct {
	UserID int    `json:"userId"`
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Client implements sync.Remote over HTTP.
type Client struct {
	http     *transport.Client
	postsURL string
	category string
	limit    int
	userID   int
}

// New creates a remote client. Zero-valued config fields take defaults.
func New(cfg Config) (*Client, error) {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Category == "" {
		cfg.Category = def.Category
	}
	if cfg.UserID == 0 {
		cfg.UserID = def.UserID
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Limit < 0 {
		return nil, errors.NewValidationError("remote_limit", cfg.Limit, "must not be negative")
	}

	auth, err := transport.ParseAuthenticator(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &Client{
		http: transport.New(auth,
			transport.WithToken(cfg.Token),
			transport.WithTimeout(cfg.Timeout),
			transport.WithUserAgent("quotegen"),
		),
		postsURL: strings.TrimRight(cfg.BaseURL, "/") + "/posts",
		category: cfg.Category,
		limit:    cfg.Limit,
		userID:   cfg.UserID,
	}, nil
}

// Endpoint returns the URL used for both fetch and push.
func (c *Client) Endpoint() string {
	return c.postsURL
}

// Fetch lists remote items and maps them to quotes: title becomes text and
// every quote gets the configured category. Items with a blank title are
// dropped.
func (c *Client) Fetch(ctx context.Context) ([]quotes.Quote, error) {
	resp, err := c.http.Get(ctx, c.postsURL)
	if err != nil {
		return nil, errors.WrapRemote("fetch", c.postsURL, err)
	}

	var posts []post
	if err := transport.DecodeResponse(resp, &posts); err != nil {
		return nil, errors.WrapRemote("fetch", c.postsURL, err)
	}

	out := make([]quotes.Quote, 0, len(posts))
	for _, p := range posts {
		if c.limit > 0 && len(out) >= c.limit {
			break
		}
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		out = append(out, quotes.Quote{ID: p.ID, Text: p.Title, Category: c.category})
	}

	logging.FromContext(ctx).Debug().
		Int("received", len(posts)).
		Int("kept", len(out)).
		Str("endpoint", c.postsURL).
		Msg("Fetched remote quotes")
	return out, nil
}

// Push sends a single quote. The text goes in title and the category in body.
func (c *Client) Push(ctx context.Context, q quotes.Quote) (pkgsync.Ack, error) {
	resp, err := c.http.PostJSON(ctx, c.postsURL, post{UserID: c.userID, Title: q.Text, Body: q.Category})
	if err != nil {
		return pkgsync.Ack{}, errors.WrapRemote("push", c.postsURL, err)
	}
	status := resp.StatusCode

	var created post
	if err := transport.DecodeResponse(resp, &created); err != nil {
		return pkgsync.Ack{Status: status}, errors.WrapRemote("push", c.postsURL, err)
	}
	return pkgsync.Ack{ID: created.ID, Status: status}, nil
}
