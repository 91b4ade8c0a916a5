package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(mr.Addr(), "", 0)
}

func TestGetOrLoad_CachesAfterFirstLoad(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]byte, error) {
		calls++
		return []byte("payload"), nil
	}

	got, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	got, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
	assert.Equal(t, 1, calls)
}

func TestGetOrLoad_LoaderError(t *testing.T) {
	c := testCache(t)

	_, err := c.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) {
		return nil, errors.New("db down")
	})
	assert.Error(t, err)
}

func TestGetOrLoadJSON_RoundTrip(t *testing.T) {
	c := testCache(t)
	type item struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}

	calls := 0
	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{ID: 1, Title: "bakery"}}, nil
	}

	first, err := GetOrLoadJSON(c, context.Background(), "stores", time.Minute, load)
	require.NoError(t, err)
	second, err := GetOrLoadJSON(c, context.Background(), "stores", time.Minute, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	require.Len(t, second, 1)
	assert.Equal(t, "bakery", second[0].Title)
}
