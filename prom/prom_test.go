package prom_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veartutop/swr"
	"github.com/veartutop/swr/prom"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}

	return byName
}

func TestTracker(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewPedanticRegistry()
	tr := prom.NewTracker(reg, "app", "swr", nil)

	tr.Add(ctx, swr.MetricHit, 1, "name", "test")
	tr.Add(ctx, swr.MetricHit, 2, "name", "test")
	tr.Set(ctx, "cache_items", 5, "name", "test")

	byName := gather(t, reg)

	hit := byName["app_swr_cache_hit"]
	require.NotNil(t, hit)
	assert.Equal(t, float64(3), hit.GetMetric()[0].GetCounter().GetValue())

	items := byName["app_swr_cache_items"]
	require.NotNil(t, items)
	assert.Equal(t, float64(5), items.GetMetric()[0].GetGauge().GetValue())
}

func TestTracker_cache(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewPedanticRegistry()

	c := swr.New(swr.Config{
		Name:           "articles",
		MinTimeToStale: time.Minute,
		Stats:          prom.NewTracker(reg, "app", "swr", nil),
	})

	load := func(_ context.Context) (interface{}, error) {
		return "v1", nil
	}

	_, err := c.Get(ctx, swr.StringKey("key"), load)
	require.NoError(t, err)

	_, err = c.Get(ctx, swr.StringKey("key"), load)
	require.NoError(t, err)

	byName := gather(t, reg)

	miss := byName["app_swr_cache_miss"]
	require.NotNil(t, miss)
	assert.Equal(t, float64(1), miss.GetMetric()[0].GetCounter().GetValue())

	hit := byName["app_swr_cache_hit"]
	require.NotNil(t, hit)
	assert.Equal(t, float64(1), hit.GetMetric()[0].GetCounter().GetValue())

	invoke := byName["app_swr_cache_invoke"]
	require.NotNil(t, invoke)
	assert.Equal(t, float64(2), invoke.GetMetric()[0].GetCounter().GetValue())
}
