package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/jpillora/backoff"
	"github.com/raykavin/linechart/pkg/core"
	"github.com/raykavin/linechart/pkg/logger"
)

const defaultRetries = 3

// FetchOptions configures Fetch
type FetchOptions struct {
	Client *http.Client
	// Retries is the number of extra attempts after a failure, 3 when zero
	Retries int
	// MinBackoff and MaxBackoff bound the jittered wait between attempts
	MinBackoff time.Duration
	MaxBackoff time.Duration
	CSV        CSVOptions
	Log        logger.Logger
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func (e statusError) temporary() bool {
	return e.code >= http.StatusInternalServerError
}

// Fetch downloads a JSON or CSV dataset. Network errors and 5xx responses
// are retried; the wait between attempts is cut short when ctx is done.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]core.Series, error) {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	retries := opts.Retries
	if retries <= 0 {
		retries = defaultRetries
	}

	b := setupBackoffRetry(opts)
	for attempt := 0; ; attempt++ {
		source, err := fetchOnce(ctx, client, url, opts.CSV)
		if err == nil {
			return source, nil
		}

		var status statusError
		if errors.As(err, &status) && !status.temporary() {
			return nil, err
		}
		if isPermanent(err) || attempt >= retries {
			return nil, err
		}

		wait := b.Duration()
		if opts.Log != nil {
			opts.Log.WithError(err).WithFields(map[string]any{
				"url":     url,
				"attempt": attempt + 1,
				"wait":    wait.String(),
			}).Warn("dataset fetch failed, retrying")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// isPermanent reports errors caused by the response body, which a retry would repeat
func isPermanent(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrMalformedRow) ||
		errors.Is(err, ErrEmptyTable) ||
		errors.Is(err, ErrInvalidJSON)
}

func setupBackoffRetry(opts FetchOptions) *backoff.Backoff {
	b := &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    2 * time.Second,
		Jitter: true,
	}
	if opts.MinBackoff > 0 {
		b.Min = opts.MinBackoff
	}
	if opts.MaxBackoff > 0 {
		b.Max = opts.MaxBackoff
	}
	return b
}

func fetchOnce(ctx context.Context, client *http.Client, url string, opts CSVOptions) ([]core.Series, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, text/csv")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, statusError{code: resp.StatusCode}
	}

	media, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	switch {
	case media == "text/csv" || path.Ext(req.URL.Path) == ".csv":
		return ReadCSV(resp.Body, opts)
	case media == "application/json" || path.Ext(req.URL.Path) == ".json" || media == "":
		return ReadJSON(resp.Body)
	default:
		return nil, fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, media)
	}
}
