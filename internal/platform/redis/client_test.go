package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carriertext/internal/platform/config"
	"carriertext/pkg/platform/sentinel"
)

func TestNewWithoutURLIsDisabled(t *testing.T) {
	client, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRejectsMalformedURL(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	assert.ErrorContains(t, err, "parse redis URL")
}

func TestNewUnreachableServerIsUnavailable(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{
		URL:         "redis://127.0.0.1:1/0",
		DialTimeout: 200 * time.Millisecond,
	})
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestApplyPoolKeepsLibraryDefaultsForZeroValues(t *testing.T) {
	opts := &goredis.Options{PoolSize: 7, DialTimeout: time.Second}
	applyPool(opts, config.RedisConfig{MinIdleConns: 2, ReadTimeout: 3 * time.Second})

	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, time.Second, opts.DialTimeout)
	assert.Equal(t, 2, opts.MinIdleConns)
	assert.Equal(t, 3*time.Second, opts.ReadTimeout)
}
