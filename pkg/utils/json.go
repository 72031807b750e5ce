package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// DecodePayload converts a freshly decoded message payload (typically a
// map[string]any after a round trip through the websocket) into the
// concrete payload type.
func DecodePayload[T any](v any) (T, error) {
	data, err := jsoniter.Marshal(v)
	if err != nil {
		return *new(T), errors.WithMessage(err, "marshal payload")
	}
	var payload T
	if err := jsoniter.Unmarshal(data, &payload); err != nil {
		return *new(T), errors.WithMessage(err, "unmarshal payload")
	}
	return payload, nil
}
