package swr

import (
	"encoding/json"
)

// Codec converts produced values to and from the storage representation.
//
// Decode must map empty raw input to nil. A codec must round-trip every value
// the producer can return.
type Codec interface {
	Encode(value interface{}) (string, error)
	Decode(raw string) (interface{}, error)
}

// JSONCodec stores values as JSON, it is the default codec.
//
// Round-tripped numbers come back as float64 and structs as
// map[string]interface{}, as usual for JSON into interface{}.
type JSONCodec struct{}

var _ Codec = JSONCodec{}

// Encode implements Codec.
func (JSONCodec) Encode(value interface{}) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Decode implements Codec.
func (JSONCodec) Decode(raw string) (interface{}, error) {
	if raw == "" {
		return nil, nil
	}

	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}

	return value, nil
}

// StringCodec passes string payloads through unmodified.
//
// Encode fails for non-string values. An empty string decodes to nil and is
// therefore uncacheable as a present value.
type StringCodec struct{}

var _ Codec = StringCodec{}

// Encode implements Codec.
func (StringCodec) Encode(value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", ErrInvalidValueType
	}

	return s, nil
}

// Decode implements Codec.
func (StringCodec) Decode(raw string) (interface{}, error) {
	if raw == "" {
		return nil, nil
	}

	return raw, nil
}
