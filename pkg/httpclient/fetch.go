package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// StatusError is returned by Fetch when the server answered with a non-2xx status.
type StatusError struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *StatusError) Error() string {
	snippet := strings.TrimSpace(string(e.Body))
	if n := 256; len(snippet) > n {
		for n > 0 && !utf8.RuneStart(snippet[n]) {
			n--
		}
		snippet = snippet[:n]
	}
	if snippet == "" {
		return fmt.Sprintf("http status %d", e.StatusCode)
	}
	return fmt.Sprintf("http status %d: %s", e.StatusCode, snippet)
}

// Fetch issues a GET and returns the body of a 2xx response.
// Non-2xx responses come back as *StatusError carrying the response headers;
// failures without a response are returned wrapped, with no status attached.
func Fetch(ctx context.Context, client Client, url string, headers map[string]string) ([]byte, error) {
	if client == nil {
		return nil, fmt.Errorf("http client is nil")
	}
	resp, err := client.Get(ctx, url, headers)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}

	code := resp.StatusCode()
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: code,
			Header:     resp.Header(),
			Body:       resp.Body(),
		}
	}
	return resp.Body(), nil
}
