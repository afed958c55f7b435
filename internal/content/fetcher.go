package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/galleryroom/vr-gallery/internal/assets"
	"github.com/galleryroom/vr-gallery/internal/model"
)

// FetchTimeout is the hard client-side deadline on one page request
const FetchTimeout = 10 * time.Second

// APIKeyHeader carries the content API key on direct (non-proxied) requests
const APIKeyHeader = "X-MICROCMS-API-KEY"

// Fetcher retrieves pages of work items from the content API. Endpoint and
// key vary by deployment (direct call with the key header, or a same-origin
// proxy that injects the key); callers see the same page-in, items-out
// interface either way.
type Fetcher struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	registry   *assets.Registry
}

// NewFetcher creates a fetcher against the given endpoint. apiKey may be
// empty when the endpoint is a key-injecting proxy. registry is optional;
// when set, each fetch counts toward visible loading progress.
func NewFetcher(endpoint, apiKey string, registry *assets.Registry) *Fetcher {
	return &Fetcher{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: FetchTimeout,
		},
		registry: registry,
	}
}

// FetchPage retrieves up to model.PageSize work items starting at offset.
// On any network, timeout, or decode error the previous page's content is
// the caller's to keep; a failed fetch never blanks the gallery.
func (f *Fetcher) FetchPage(ctx context.Context, offset int) (*model.Page, error) {
	if offset < 0 {
		return nil, fmt.Errorf("offset must be non-negative, got %d", offset)
	}

	var done assets.CompletionFunc
	if f.registry != nil {
		done = f.registry.Register("fetch:" + strconv.Itoa(offset))
		defer done()
	}

	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(model.PageSize))
	q.Set("offset", strconv.Itoa(offset))
	req.URL.RawQuery = q.Encode()

	if f.apiKey != "" {
		req.Header.Set(APIKeyHeader, f.apiKey)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page at offset %d: %w", offset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content API returned status %d", resp.StatusCode)
	}

	var page model.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}

	return &page, nil
}
