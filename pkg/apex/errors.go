package apex

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samvad-hq/apex-legends-go/pkg/httpclient"
)

// Kind classifies a failed call so callers can branch without matching strings.
type Kind int

const (
	KindTransport Kind = iota + 1
	KindRateLimited
	KindUnauthorized
	KindNotFound
	KindServer
	KindStatus
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRateLimited:
		return "rate_limited"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; each matches any *Error of the same Kind.
var (
	ErrTransport    = &Error{Kind: KindTransport}
	ErrRateLimited  = &Error{Kind: KindRateLimited}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrServer       = &Error{Kind: KindServer}
	ErrStatus       = &Error{Kind: KindStatus}
	ErrDecode       = &Error{Kind: KindDecode}
)

const (
	msgRateLimited   = "too many requests, please wait before retrying"
	msgUnauthorized  = "invalid API key"
	msgNotFound      = "resource not found"
	msgServer        = "upstream server error"
	msgUnparsable    = "could not parse response"
	maxBodyInMessage = 512
)

// Error is returned by every resource operation.
type Error struct {
	Kind       Kind
	StatusCode int
	// RetryAfter is the delay derived from the rate hint header; set for KindRateLimited only.
	RetryAfter time.Duration
	// Body is the raw response body for status and decode failures.
	Body string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		if e.Err == nil {
			return "request failed"
		}
		return "request failed: " + e.Err.Error()
	case KindRateLimited:
		return msgRateLimited
	case KindUnauthorized:
		return msgUnauthorized
	case KindNotFound:
		return msgNotFound
	case KindDecode:
		return bodySnippet(e.Body)
	}
	if e.StatusCode == http.StatusInternalServerError {
		return msgServer
	}
	return statusLine(e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.StatusCode == 0 || t.StatusCode == e.StatusCode)
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

func statusLine(code int) string {
	if text := http.StatusText(code); text != "" {
		return fmt.Sprintf("%d %s", code, text)
	}
	return fmt.Sprintf("%d", code)
}

func bodySnippet(body string) string {
	s := strings.TrimSpace(body)
	if s == "" {
		return msgUnparsable
	}
	if len(s) > maxBodyInMessage {
		return truncateRunes(s, maxBodyInMessage) + "..."
	}
	return s
}

// truncateRunes cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// classify turns a transport failure into an *Error.
func classify(err error, defaultDelay time.Duration) *Error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return &Error{Kind: KindTransport, Err: err}
	}

	out := &Error{
		StatusCode: statusErr.StatusCode,
		Body:       string(statusErr.Body),
		Err:        statusErr,
	}
	switch code := statusErr.StatusCode; {
	case code == http.StatusTooManyRequests:
		out.Kind = KindRateLimited
		out.RetryAfter = retryDelay(statusErr.Header, defaultDelay)
	case code == http.StatusUnauthorized:
		out.Kind = KindUnauthorized
	case code == http.StatusNotFound:
		out.Kind = KindNotFound
	case code >= http.StatusInternalServerError:
		out.Kind = KindServer
	default:
		out.Kind = KindStatus
	}
	return out
}

func decodeError(body []byte, err error) *Error {
	return &Error{Kind: KindDecode, Body: string(body), Err: err}
}
