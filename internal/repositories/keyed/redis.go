package keyed

import (
	"context"
	"encoding/json"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/mobiledex/pokedex-api/internal/errors"
	redisclient "github.com/mobiledex/pokedex-api/internal/redis"
)

type redisRepository[T any] struct {
	client redisclient.Client
	prefix string
}

// RedisConfig contains configuration for a Redis keyed repository.
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix namespaces this table, e.g. "species". Keys are written as
	// "<prefix>:<id>".
	KeyPrefix string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.KeyPrefix == "" {
		return errors.InvalidArgument("key prefix cannot be empty")
	}
	return nil
}

// NewRedis creates a new Redis-backed keyed repository for rows of type T
func NewRedis[T any](cfg *RedisConfig) (Repository[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository[T]{
		client: cfg.Client,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *redisRepository[T]) key(id int) string {
	return r.prefix + ":" + strconv.Itoa(id)
}

func (r *redisRepository[T]) Upsert(ctx context.Context, input UpsertInput[T]) (*UpsertOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgumentf("ID must be positive, got %d", input.ID)
	}

	data, err := json.Marshal(input.Row)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s %d", r.prefix, input.ID)
	}

	if err := r.client.Set(ctx, r.key(input.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert %s %d", r.prefix, input.ID)
	}
	return &UpsertOutput{}, nil
}

func (r *redisRepository[T]) UpsertAll(ctx context.Context, input UpsertAllInput[T]) (*UpsertAllOutput, error) {
	if len(input.Rows) == 0 {
		return nil, errors.InvalidArgument("batch cannot be empty")
	}

	pipe := r.client.TxPipeline()
	for id, row := range input.Rows {
		if id <= 0 {
			return nil, errors.InvalidArgumentf("ID must be positive, got %d", id)
		}
		data, err := json.Marshal(row)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal %s %d", r.prefix, id)
		}
		pipe.Set(ctx, r.key(id), data, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert %d %s rows", len(input.Rows), r.prefix)
	}
	return &UpsertAllOutput{}, nil
}

func (r *redisRepository[T]) Get(ctx context.Context, input GetInput) (*GetOutput[T], error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgumentf("ID must be positive, got %d", input.ID)
	}

	result, err := r.client.Get(ctx, r.key(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %d not cached", r.prefix, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get %s %d", r.prefix, input.ID)
	}

	var row T
	if err := json.Unmarshal([]byte(result), &row); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s %d", r.prefix, input.ID)
	}
	return &GetOutput[T]{Row: row}, nil
}

func (r *redisRepository[T]) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgumentf("ID must be positive, got %d", input.ID)
	}

	if err := r.client.Del(ctx, r.key(input.ID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s %d", r.prefix, input.ID)
	}
	return &DeleteOutput{}, nil
}
