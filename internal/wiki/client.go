// Package wiki implements the Wikipedia gateway: search, article content,
// cross-language variants, the language catalog and section splitting.
//
// The client talks to the per-language MediaWiki Action API
// (https://{lang}.wikipedia.org/w/api.php). All outbound calls run behind a
// circuit breaker so a Wikipedia outage degrades to fast 503s instead of
// piling up blocked requests.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"truepedia.io/truepedia/internal/config"
	"truepedia.io/truepedia/internal/pkg/logger"
	"truepedia.io/truepedia/internal/pkg/metrics"
)

// Sentinel errors surfaced to handlers.
var (
	// ErrArticleMissing means the title does not resolve to a page.
	ErrArticleMissing = errors.New("article missing")

	// ErrUnavailable means the Wikipedia API could not be reached
	// (including breaker-open fast failures).
	ErrUnavailable = errors.New("wikipedia unavailable")
)

// Article is a transiently fetched Wikipedia article. Articles are not owned
// by TruePedia; Language is the edition the content came from.
type Article struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// Client is a MediaWiki Action API client.
type Client struct {
	httpClient       *http.Client
	endpointTemplate string
	userAgent        string
	searchLimit      int
	breaker          *gobreaker.CircuitBreaker
}

// NewClient creates a Wikipedia API client from configuration.
func NewClient(cfg config.WikiConfig) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wikipedia",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		httpClient:       &http.Client{Timeout: cfg.Timeout},
		endpointTemplate: cfg.EndpointTemplate,
		userAgent:        cfg.UserAgent,
		searchLimit:      cfg.SearchLimit,
		breaker:          breaker,
	}
}

// Search returns article titles matching query in the given language edition.
// limit <= 0 falls back to the configured default.
func (c *Client) Search(ctx context.Context, query, lang string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = c.searchLimit
	}

	params := url.Values{}
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))

	var resp struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := c.query(ctx, lang, params, &resp); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles, nil
}

// Article fetches a full article: canonical title, URL, intro summary and the
// complete plain-text extract. Returns ErrArticleMissing for unknown titles.
func (c *Client) Article(ctx context.Context, title, lang string) (*Article, error) {
	// Full extract plus canonical URL in one round trip, intro-only extract
	// in a second one. The Action API does not return both cuts at once.
	full, err := c.fetchPage(ctx, title, lang, false)
	if err != nil {
		return nil, err
	}
	intro, err := c.fetchPage(ctx, title, lang, true)
	if err != nil {
		return nil, err
	}

	return &Article{
		Title:    full.Title,
		URL:      full.FullURL,
		Summary:  intro.Extract,
		Content:  full.Extract,
		Language: lang,
	}, nil
}

// AvailableLanguages returns the language variants of an article as a map of
// language code to the article's title in that edition.
func (c *Client) AvailableLanguages(ctx context.Context, title, lang string) (map[string]string, error) {
	params := url.Values{}
	params.Set("prop", "langlinks")
	params.Set("titles", title)
	params.Set("lllimit", "500")
	params.Set("redirects", "1")

	var resp pagesResponse
	if err := c.query(ctx, lang, params, &resp); err != nil {
		return nil, err
	}

	page, err := resp.singlePage()
	if err != nil {
		return nil, err
	}

	variants := make(map[string]string, len(page.LangLinks))
	for _, ll := range page.LangLinks {
		variants[ll.Lang] = ll.Title
	}
	return variants, nil
}

// page is the subset of the Action API page object the client reads.
type page struct {
	Title     string `json:"title"`
	Missing   bool   `json:"missing"`
	Extract   string `json:"extract"`
	FullURL   string `json:"fullurl"`
	LangLinks []struct {
		Lang  string `json:"lang"`
		Title string `json:"title"`
	} `json:"langlinks"`
}

type pagesResponse struct {
	Query struct {
		Pages []page `json:"pages"`
	} `json:"query"`
}

func (r *pagesResponse) singlePage() (*page, error) {
	if len(r.Query.Pages) == 0 {
		return nil, ErrArticleMissing
	}
	p := r.Query.Pages[0]
	if p.Missing {
		return nil, ErrArticleMissing
	}
	return &p, nil
}

func (c *Client) fetchPage(ctx context.Context, title, lang string, introOnly bool) (*page, error) {
	params := url.Values{}
	params.Set("prop", "extracts|info")
	params.Set("titles", title)
	params.Set("explaintext", "1")
	params.Set("inprop", "url")
	params.Set("redirects", "1")
	if introOnly {
		params.Set("exintro", "1")
	}

	var resp pagesResponse
	if err := c.query(ctx, lang, params, &resp); err != nil {
		return nil, err
	}
	return resp.singlePage()
}

// query performs one Action API request through the circuit breaker.
func (c *Client) query(ctx context.Context, lang string, params url.Values, out interface{}) error {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	endpoint := fmt.Sprintf(c.endpointTemplate, lang)
	reqURL := endpoint + "?" + params.Encode()

	start := time.Now()
	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequest(ctx, reqURL)
	})
	metrics.ObserveOutbound("wikipedia", start, err)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: circuit breaker open", ErrUnavailable)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := json.Unmarshal(body.([]byte), out); err != nil {
		return fmt.Errorf("decode wikipedia response: %w", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia api status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}
