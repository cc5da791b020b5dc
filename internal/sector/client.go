package sector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zerojournal/tradepulse/internal/logger"
)

// Unknown is the sector assigned to any symbol the provider cannot
// classify. Lookups never fail the caller; they degrade to Unknown.
const Unknown = "Unknown"

const defaultMaxParallel = 5

// Client resolves stock symbols to industry sectors against an external
// HTTP provider. Results are cached for the lifetime of the client, so
// repeated report builds don't re-query the provider.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	cache map[string]string
}

// NewClient builds a sector client. An empty baseURL disables lookups
// entirely: every symbol resolves to Unknown.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   make(map[string]string),
	}
}

// sectorResponse is the provider's JSON body for a single symbol.
type sectorResponse struct {
	Symbol string `json:"symbol"`
	Sector string `json:"sector"`
}

// Lookup returns the sector for one symbol. Provider errors are logged
// and mapped to Unknown; the error return is reserved for context
// cancellation.
func (c *Client) Lookup(ctx context.Context, symbol string) (string, error) {
	if c.baseURL == "" {
		return Unknown, nil
	}

	c.mu.RLock()
	if s, ok := c.cache[symbol]; ok {
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	sec, err := c.fetch(ctx, symbol)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.L().Warn().Str("symbol", symbol).Err(err).Msg("sector lookup failed")
		sec = Unknown
	}

	c.mu.Lock()
	c.cache[symbol] = sec
	c.mu.Unlock()
	return sec, nil
}

// LookupAll resolves a set of symbols with bounded parallelism and
// returns a symbol → sector map. Unresolvable symbols map to Unknown.
func (c *Client) LookupAll(ctx context.Context, symbols []string) (map[string]string, error) {
	out := make(map[string]string, len(symbols))
	if len(symbols) == 0 {
		return out, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultMaxParallel)

	for _, sym := range symbols {
		symbol := sym
		g.Go(func() error {
			sec, err := c.Lookup(gctx, symbol)
			if err != nil {
				return err
			}
			mu.Lock()
			out[symbol] = sec
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, symbol string) (string, error) {
	u := fmt.Sprintf("%s/sectors/%s", c.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return Unknown, nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	var body sectorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if body.Sector == "" {
		return Unknown, nil
	}
	return body.Sector, nil
}
