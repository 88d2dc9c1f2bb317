package models

import (
	"encoding/json"
	"errors"
)

// ErrEmptyPayload is returned by [Payload.Decode] when the payload carries no
// bytes at all.
var ErrEmptyPayload = errors.New("empty payload")

// Payload is a JSON document exactly as the remote resource service returned
// it. The resource client never validates or reshapes payloads: callers that
// need typed access decode them explicitly with [Payload.Decode] or
// [DecodePayload].
type Payload json.RawMessage

// MarshalJSON returns p as the encoding of p. A nil payload encodes as null.
func (p Payload) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return p, nil
}

// UnmarshalJSON stores a copy of data in p.
func (p *Payload) UnmarshalJSON(data []byte) error {
	if p == nil {
		return errors.New("models.Payload: UnmarshalJSON on nil pointer")
	}
	*p = append((*p)[0:0], data...)
	return nil
}

// Decode unmarshals the payload into v.
func (p Payload) Decode(v any) error {
	if len(p) == 0 {
		return ErrEmptyPayload
	}
	return json.Unmarshal(p, v)
}

// String returns the raw JSON text.
func (p Payload) String() string {
	return string(p)
}

// DecodePayload decodes p into a fresh value of type T.
//
// Example usage:
//
//	post, err := models.DecodePayload[models.Post](payload)
func DecodePayload[T any](p Payload) (T, error) {
	var v T
	err := p.Decode(&v)
	return v, err
}
