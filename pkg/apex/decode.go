package apex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// upstreamErrorKey is the envelope the API uses for failures it reports with a 200.
const upstreamErrorKey = "Error"

// decodeBody unmarshals body into out. Objects must carry every key in
// required and must not be the upstream error envelope, so a 2xx never
// yields a silently zero-valued result.
func decodeBody(body []byte, out any, required []string) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return decodeError(body, errors.New("empty response body"))
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return decodeError(body, errors.New("null response body"))
	}

	if trimmed[0] == '{' {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keys); err != nil {
			return decodeError(body, err)
		}
		if _, ok := keys[upstreamErrorKey]; ok {
			return decodeError(body, errors.New("upstream reported an error"))
		}
		for _, k := range required {
			raw, ok := keys[k]
			if !ok {
				return decodeError(body, fmt.Errorf("missing field %q", k))
			}
			if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
				return decodeError(body, fmt.Errorf("field %q is null", k))
			}
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return decodeError(body, err)
	}
	return nil
}
