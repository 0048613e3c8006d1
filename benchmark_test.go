package swr_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/veartutop/swr"
)

func benchmarkGetHit(b *testing.B, storage swr.Storage) {
	c := swr.New(swr.Config{
		Storage:        storage,
		MinTimeToStale: time.Hour,
	})
	ctx := context.Background()

	producer := func(_ context.Context) (interface{}, error) {
		return 123, nil
	}

	for i := 0; i < 10000; i++ {
		k := swr.StringKey("oneone" + strconv.Itoa(i))
		// nolint
		_, _ = c.Get(ctx, k, producer)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := swr.StringKey("oneone" + strconv.Itoa(i%10000))
		// nolint
		_, _ = c.Get(ctx, k, producer)
	}
}

func Benchmark_Get_hit_memory(b *testing.B) {
	benchmarkGetHit(b, swr.NewMemory())
}

func Benchmark_Get_hit_syncMap(b *testing.B) {
	benchmarkGetHit(b, swr.NewSyncMap())
}

func Benchmark_Get_hit_goCache(b *testing.B) {
	benchmarkGetHit(b, swr.NewGoCache(nil))
}

func Benchmark_Get_miss(b *testing.B) {
	c := swr.New(swr.Config{Storage: swr.NoOp{}})
	ctx := context.Background()

	producer := func(_ context.Context) (interface{}, error) {
		return 123, nil
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// nolint
		_, _ = c.Get(ctx, swr.StringKey("oneone"), producer)
	}
}
