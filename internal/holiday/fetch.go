package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultURL is the holidays-jp dataset: a JSON object mapping ISO
// dates (YYYY-MM-DD) to holiday names, covering several years around
// the current one.
const DefaultURL = "https://holidays-jp.github.io/api/v1/date.json"

// FetchError reports a failed holiday fetch: the request itself, a
// non-2xx response, or an undecodable payload. It is fatal for the
// whole run since every page needs the map.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch holidays from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetch downloads the holiday dataset and builds the Map for baseYear.
// One request, no retry, no caching.
func Fetch(ctx context.Context, client *http.Client, url string, baseYear int) (Map, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var dataset map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&dataset); err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("decode payload: %w", err)}
	}

	holidays, err := Build(dataset, baseYear)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return holidays, nil
}
