package playstore

import (
	"encoding/json"
	"fmt"
)

// the endpoint prefixes its json with `)]}'` and two newlines so the response
// can't be evaluated when included as a script
const envelopePrefixLength = 6

// decodeEnvelope returns the html fragment containing the review list, it lives
// at [0][2] of the json array in the body.
func decodeEnvelope(body string) (string, error) {
	if len(body) < envelopePrefixLength {
		return "", fmt.Errorf("%w: body is only %d bytes", ErrMalformedResponse, len(body))
	}

	var outer []json.RawMessage
	err := json.Unmarshal([]byte(body[envelopePrefixLength:]), &outer)
	if err != nil {
		return "", fmt.Errorf("%w: unmarshal envelope: %w", ErrMalformedResponse, err)
	}
	if len(outer) < 1 {
		return "", fmt.Errorf("%w: envelope is empty", ErrMalformedResponse)
	}

	var inner []json.RawMessage
	err = json.Unmarshal(outer[0], &inner)
	if err != nil {
		return "", fmt.Errorf("%w: unmarshal envelope[0]: %w", ErrMalformedResponse, err)
	}
	if len(inner) < 3 {
		return "", fmt.Errorf("%w: envelope[0] has %d elements, expected at least 3", ErrMalformedResponse, len(inner))
	}

	if string(inner[2]) == "null" {
		return "", fmt.Errorf("%w: envelope[0][2] is null", ErrMalformedResponse)
	}
	var fragment string
	err = json.Unmarshal(inner[2], &fragment)
	if err != nil {
		return "", fmt.Errorf("%w: envelope[0][2] is not a string: %w", ErrMalformedResponse, err)
	}
	return fragment, nil
}
