package devto

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

const DefaultBaseURL = "https://dev.to/api"

// DefaultTimeoutSeconds bounds one provider round trip; there is no retry,
// so this is also the worst-case stall one blog request can add.
const DefaultTimeoutSeconds = 15

// FetchError is the single failure kind this adapter signals. Network,
// authentication, and provider-side errors all end up here; callers never
// see a raw transport error.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	if e == nil || e.Err == nil {
		return "content fetch failed"
	}
	return "content fetch failed: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client struct {
	log        *logger.Logger
	baseURL    string
	username   string
	httpClient *http.Client
}

func NewClient(log *logger.Logger, baseURL, username string, timeoutSeconds int) *Client {
	clientLog := log.With("client", "DevtoClient")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = DefaultTimeoutSeconds
	}
	return &Client{
		log:      clientLog,
		baseURL:  baseURL,
		username: username,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

// FetchPosts performs a live fetch on every call; nothing is cached and
// nothing is retried. Posts come back in provider-supplied order.
func (c *Client) FetchPosts(ctx context.Context) ([]types.BlogPost, error) {
	endpoint := fmt.Sprintf("%s/articles?username=%s", c.baseURL, url.QueryEscape(c.username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Err: fmt.Errorf("provider status %d", resp.StatusCode)}
	}

	var articles []article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode provider response: %w", err)}
	}

	posts := make([]types.BlogPost, 0, len(articles))
	for _, a := range articles {
		posts = append(posts, convertArticle(a))
	}
	c.log.Debug("Fetched blog posts from provider", "count", len(posts))
	return posts, nil
}

func convertArticle(a article) types.BlogPost {
	return types.BlogPost{
		ID:          strconv.Itoa(a.ID),
		Title:       a.Title,
		Summary:     a.Description,
		URL:         a.URL,
		PublishedAt: a.PublishedAt,
	}
}
