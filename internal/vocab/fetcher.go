// Package vocab fetches controlled-vocabulary documents enumerating the
// permitted values of a catalog field. The fetch is an injected collaborator
// so callers can mock, cache, or retry it independently of the core.
package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Fetcher supplies the permitted values for one metadata field.
type Fetcher interface {
	PermittedValues(ctx context.Context, field string) (map[string]struct{}, error)
}

// HTTPFetcher reads the raw WCRP CMIP6_CVs JSON documents. Each document is
// an object whose <field> member maps permitted values to their descriptions;
// only the keys matter here.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher returns a fetcher for the CV documents under baseURL.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// PermittedValues fetches <BaseURL>/CMIP6_<field>.json and returns the keys
// of its <field> member as a set.
func (f *HTTPFetcher) PermittedValues(ctx context.Context, field string) (map[string]struct{}, error) {
	url := fmt.Sprintf("%s/CMIP6_%s.json", f.BaseURL, field)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch controlled vocabulary: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch controlled vocabulary: %s returned %s", url, resp.Status)
	}

	var doc map[string]map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode controlled vocabulary: %w", err)
	}
	entries, ok := doc[field]
	if !ok {
		return nil, fmt.Errorf("controlled vocabulary document has no %q member", field)
	}

	values := make(map[string]struct{}, len(entries))
	for k := range entries {
		values[k] = struct{}{}
	}
	return values, nil
}
