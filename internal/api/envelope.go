package api

import (
	"encoding/json"
	"errors"
)

// decodeEnvelope unmarshals a response that is either wrapped as
// {"data": <entity|entity[]>} or a bare entity/array.
func decodeEnvelope(data []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(data, out)
}

// UserMessage returns the text to surface for a failed call: the
// backend-supplied message when there is one, a generic fallback
// otherwise.
func UserMessage(err error) string {
	var be *Error
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return "the request could not be completed, try again"
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Status == 404
}
