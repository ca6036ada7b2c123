package display

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"carriertext/internal/carrier/models"
	"carriertext/pkg/platform/sentinel"
)

const defaultKeyPrefix = "carriertext"

// Update is the payload published on every pass.
type Update struct {
	PassID                  string    `json:"pass_id"`
	Text                    string    `json:"text"`
	AllSimsMissing          bool      `json:"all_sims_missing"`
	AnySimReadyAndInService bool      `json:"any_sim_ready_and_in_service"`
	AirplaneOverride        bool      `json:"airplane_override"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// Redis stores the current text under <prefix>:text and publishes every update on
// <prefix>:updates so any number of renderers can follow along.
type Redis struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// RedisOption configures a Redis sink.
type RedisOption func(*Redis)

// WithKeyPrefix overrides the key/channel prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *Redis) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) RedisOption {
	return func(s *Redis) {
		s.now = now
	}
}

// NewRedis constructs a Redis-backed display sink.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	s := &Redis{
		client: client,
		prefix: defaultKeyPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Redis) textKey() string {
	return s.prefix + ":text"
}

// Channel is the pub/sub channel updates are published on.
func (s *Redis) Channel() string {
	return s.prefix + ":updates"
}

// Display writes the text and publishes the update in one MULTI/EXEC.
func (s *Redis) Display(ctx context.Context, result models.DisplayResult) error {
	payload, err := json.Marshal(Update{
		PassID:                  uuid.NewString(),
		Text:                    result.Text,
		AllSimsMissing:          result.AllSimsMissing,
		AnySimReadyAndInService: result.AnySimReadyAndInService,
		AirplaneOverride:        result.AirplaneOverride,
		UpdatedAt:               s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal display update: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.textKey(), result.Text, 0)
		pipe.Publish(ctx, s.Channel(), payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: push display text: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}

// Text returns the stored text. sentinel.ErrNotFound means nothing was pushed yet.
func (s *Redis) Text(ctx context.Context) (string, error) {
	text, err := s.client.Get(ctx, s.textKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read display text: %w", err)
	}
	return text, nil
}
