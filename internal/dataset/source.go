package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ErrSourceUnavailable is returned when the trip data cannot be read from
// its source.
var ErrSourceUnavailable = errors.New("trip data source unavailable")

func isLocalSource(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

// openSource opens the trip CSV at source. There is exactly one attempt.
func openSource(ctx context.Context, client *http.Client, source string) (io.ReadCloser, error) {
	if isLocalSource(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request for %s: %w", source, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %s", ErrSourceUnavailable, source, resp.Status)
	}

	return resp.Body, nil
}
