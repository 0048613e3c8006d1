package swr_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veartutop/swr"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := swr.NewMemory()

	v, err := m.GetItem(ctx, "key")
	assert.Empty(t, v)
	assert.EqualError(t, err, "not found: missing cache item")

	assert.NoError(t, m.SetItem(ctx, "key", "123"))

	v, err = m.GetItem(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "123", v)
	assert.Equal(t, 1, m.Len())

	m.RemoveAll()
	assert.Equal(t, 0, m.Len())

	_, err = m.GetItem(ctx, "key")
	assert.ErrorIs(t, err, swr.ErrNotFound)
}

func TestMemory_concurrency(t *testing.T) {
	ctx := context.Background()
	m := swr.NewMemory()

	pipeline := make(chan struct{}, 500)
	n := 1000

	for i := 0; i < n; i++ {
		pipeline <- struct{}{}

		k := "oneone" + strconv.Itoa(i)

		go func() {
			defer func() {
				<-pipeline
			}()

			err := m.SetItem(ctx, k, "123")
			assert.NoError(t, err)

			v, err := m.GetItem(ctx, k)
			assert.NoError(t, err)
			assert.Equal(t, "123", v)
		}()
	}

	// Waiting for goroutines to finish.
	for i := 0; i < cap(pipeline); i++ {
		pipeline <- struct{}{}
	}

	assert.Equal(t, n, m.Len())
}
