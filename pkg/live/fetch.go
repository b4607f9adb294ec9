package live

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// HTTPError indicates the live page answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// TransportError wraps everything that prevented reading the page: DNS,
// connection, timeouts and non-2xx statuses.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type page struct {
	StatusCode int
	Body       []byte
}

// fetch issues a single GET. It never retries.
func (r *Resolver) fetch(ctx context.Context, pageURL string) (*page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", pageURL)
	}

	req.Header.Set("User-Agent", r.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return &page{StatusCode: resp.StatusCode}, &TransportError{URL: pageURL, Err: &HTTPError{StatusCode: resp.StatusCode}}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.cfg.MaxBodySize))
	if err != nil {
		if ctx.Err() != nil {
			return &page{StatusCode: resp.StatusCode}, &TransportError{URL: pageURL, Err: err}
		}
		return nil, errors.Wrapf(err, "failed to read response body of %s", pageURL)
	}

	return &page{StatusCode: resp.StatusCode, Body: body}, nil
}
