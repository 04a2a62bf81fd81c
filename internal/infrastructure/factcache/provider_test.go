package factcache_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"numclass/internal/domain/value"
	"numclass/internal/infrastructure/factcache"
)

type sourceFunc func(ctx context.Context, abs uint64) value.Fact

func (f sourceFunc) Fact(ctx context.Context, abs uint64) value.Fact {
	return f(ctx, abs)
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, uint64) (string, bool, error) {
	return "", false, errors.New("cache is down")
}

func (brokenStore) Set(context.Context, uint64, string) error {
	return errors.New("cache is down")
}

func TestProviderCachesOnlySuccess(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var calls atomic.Int32

	source := sourceFunc(func(_ context.Context, abs uint64) value.Fact {
		calls.Add(1)

		if abs == 13 {
			return value.FactFromStatus(503)
		}

		return value.FactFromText("fact")
	})

	provider := factcache.NewProvider(source, factcache.NewMemory(time.Minute))

	rq.Equal("fact", provider.Fact(ctx, 6).String())
	rq.Equal("fact", provider.Fact(ctx, 6).String())
	rq.Equal(int32(1), calls.Load())

	rq.Equal("Failed to fetch fun fact.", provider.Fact(ctx, 13).String())
	rq.Equal("Failed to fetch fun fact.", provider.Fact(ctx, 13).String())
	rq.Equal(int32(3), calls.Load())
}

func TestProviderCollapsesConcurrentLookups(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var calls atomic.Int32

	release := make(chan struct{})

	source := sourceFunc(func(context.Context, uint64) value.Fact {
		calls.Add(1)
		<-release

		return value.FactFromText("28 is perfect.")
	})

	provider := factcache.NewProvider(source, factcache.NewMemory(time.Minute))

	const workers = 10

	var wg sync.WaitGroup

	results := make([]string, workers)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			results[i] = provider.Fact(ctx, 28).String()
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	rq.Equal(int32(1), calls.Load())

	for _, r := range results {
		rq.Equal("28 is perfect.", r)
	}
}

func TestProviderStoreErrorsDegrade(t *testing.T) {
	rq := require.New(t)

	source := sourceFunc(func(context.Context, uint64) value.Fact {
		return value.FactFromText("fact")
	})

	provider := factcache.NewProvider(source, brokenStore{})

	fact := provider.Fact(context.Background(), 1)
	rq.True(fact.OK())
	rq.Equal("fact", fact.String())
}

func TestProviderContextCanceled(t *testing.T) {
	rq := require.New(t)

	release := make(chan struct{})
	defer close(release)

	source := sourceFunc(func(context.Context, uint64) value.Fact {
		<-release
		return value.FactFromText("late")
	})

	provider := factcache.NewProvider(source, factcache.NewMemory(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	fact := provider.Fact(ctx, 1)
	rq.Equal(value.FactError, fact.Outcome)
	rq.Contains(fact.String(), "context deadline exceeded")
}

func TestProviderRefreshBypassesCache(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	texts := []string{"first", "second"}

	var calls atomic.Int32

	source := sourceFunc(func(context.Context, uint64) value.Fact {
		return value.FactFromText(texts[calls.Add(1)-1])
	})

	store := factcache.NewMemory(time.Minute)
	provider := factcache.NewProvider(source, store)

	rq.Equal("first", provider.Fact(ctx, 5).String())
	rq.Equal("second", provider.Refresh(ctx, 5).String())
	rq.Equal("second", provider.Fact(ctx, 5).String())

	text, ok, err := store.Get(ctx, 5)
	rq.NoError(err)
	rq.True(ok)
	rq.Equal("second", text)
}

func TestMemoryExpires(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := factcache.NewMemory(50 * time.Millisecond)
	rq.NoError(store.Set(ctx, 7, "seven"))

	text, ok, err := store.Get(ctx, 7)
	rq.NoError(err)
	rq.True(ok)
	rq.Equal("seven", text)

	time.Sleep(100 * time.Millisecond)

	_, ok, err = store.Get(ctx, 7)
	rq.NoError(err)
	rq.False(ok)
}

func TestRedis(t *testing.T) {
	address := os.Getenv("TEST_REDIS_ADDRESS")
	if address == "" {
		t.Skip("TEST_REDIS_ADDRESS is not set")
	}

	rq := require.New(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: address}) //nolint:exhaustruct
	defer client.Close()

	store := factcache.NewRedis(client, time.Minute)

	const n = uint64(987654321)

	client.Del(ctx, "numclass:fact:987654321")

	_, ok, err := store.Get(ctx, n)
	rq.NoError(err)
	rq.False(ok)

	rq.NoError(store.Set(ctx, n, "a big number"))

	text, ok, err := store.Get(ctx, n)
	rq.NoError(err)
	rq.True(ok)
	rq.Equal("a big number", text)
}
