package swr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veartutop/swr"
)

func TestJSONCodec(t *testing.T) {
	c := swr.JSONCodec{}

	raw, err := c.Encode(map[string]interface{}{"id": 42, "name": "dog"})
	require.NoError(t, err)

	v, err := c.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": float64(42), "name": "dog"}, v)

	// Nil round-trips to nil and is therefore uncacheable as a present value.
	raw, err = c.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", raw)

	v, err = c.Decode(raw)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = c.Decode("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = c.Decode("{broken")
	assert.Error(t, err)
}

func TestStringCodec(t *testing.T) {
	c := swr.StringCodec{}

	raw, err := c.Encode("v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", raw)

	v, err := c.Decode("v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	v, err = c.Decode("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = c.Encode(123)
	assert.ErrorIs(t, err, swr.ErrInvalidValueType)
}
