package pokemon

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/mobiledex/pokedex-api/internal/codec"
	"github.com/mobiledex/pokedex-api/internal/errors"
	redisclient "github.com/mobiledex/pokedex-api/internal/redis"
)

const (
	summaryKeyPrefix = "pokemon:summary:"
	summaryIndexKey  = "pokemon:summary:index"
	summaryTotalKey  = "pokemon:summary:total"
	detailsKeyPrefix = "pokemon:details:"
	nameIndexPrefix  = "pokemon:details:name:"

	// Error messages
	errEmptyBatch  = "summary batch cannot be empty"
	errIDNotSet    = "pokemon ID must be positive"
	errNameNotSet  = "pokemon name cannot be empty"
	errLimitNotSet = "limit must be positive"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis Pokémon repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed Pokémon repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func summaryKey(id int) string {
	return summaryKeyPrefix + strconv.Itoa(id)
}

func detailsKey(id int) string {
	return detailsKeyPrefix + strconv.Itoa(id)
}

func (r *redisRepository) UpsertSummaries(
	ctx context.Context,
	input UpsertSummariesInput,
) (*UpsertSummariesOutput, error) {
	if len(input.Rows) == 0 {
		return nil, errors.InvalidArgument(errEmptyBatch)
	}

	// Carry over favorite flags from rows that already exist: a list
	// re-fetch must never clear a user's favorites.
	written := make([]codec.PokemonSummaryRow, 0, len(input.Rows))
	pipe := r.client.TxPipeline()
	for _, row := range input.Rows {
		if row.ID <= 0 {
			return nil, errors.InvalidArgumentf("summary row has invalid ID %d", row.ID)
		}

		existing, err := r.getSummaryRow(ctx, row.ID)
		if err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
		if err == nil && existing.Favorite {
			row.Favorite = true
		}

		data, err := json.Marshal(row)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal summary %d", row.ID)
		}
		pipe.Set(ctx, summaryKey(row.ID), data, 0)
		pipe.ZAdd(ctx, summaryIndexKey, redis.Z{
			Score:  float64(row.ID),
			Member: strconv.Itoa(row.ID),
		})
		written = append(written, row)
	}
	if input.Total > 0 {
		pipe.Set(ctx, summaryTotalKey, strconv.Itoa(input.Total), 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert %d summaries", len(input.Rows))
	}

	return &UpsertSummariesOutput{Rows: written}, nil
}

func (r *redisRepository) ListSummaries(
	ctx context.Context,
	input ListSummariesInput,
) (*ListSummariesOutput, error) {
	if input.Limit <= 0 {
		return nil, errors.InvalidArgument(errLimitNotSet)
	}
	if input.Offset < 0 {
		return nil, errors.InvalidArgumentf("offset must not be negative, got %d", input.Offset)
	}

	total, err := r.listTotal(ctx)
	if err != nil {
		return nil, err
	}

	// Window by score, not rank: scores are IDs, so the window selects the
	// Pokémon the remote list holds at this offset regardless of which
	// pages happen to be cached.
	ids, err := r.client.ZRangeByScore(ctx, summaryIndexKey, &redis.ZRangeBy{
		Min: strconv.Itoa(input.Offset + 1),
		Max: strconv.Itoa(input.Offset + input.Limit),
	}).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to range summary index")
	}

	rows := make([]codec.PokemonSummaryRow, 0, len(ids))
	for _, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			slog.WarnContext(ctx, "non-numeric member in summary index, cleaning up",
				"member", idStr)
			r.client.ZRem(ctx, summaryIndexKey, idStr)
			continue
		}

		row, err := r.getSummaryRow(ctx, id)
		if err != nil {
			// Index entries can outlive their rows; drop the stale entry.
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "summary row missing, cleaning up index",
					"pokemon_id", id)
				r.client.ZRem(ctx, summaryIndexKey, idStr)
				continue
			}
			return nil, err
		}
		rows = append(rows, row)
	}

	return &ListSummariesOutput{Rows: rows, Total: total}, nil
}

// listTotal returns the remote list size recorded by the last batch write,
// falling back to the cached row count for caches seeded before one was
// recorded.
func (r *redisRepository) listTotal(ctx context.Context) (int, error) {
	result, err := r.client.Get(ctx, summaryTotalKey).Result()
	if err == nil {
		total, convErr := strconv.Atoi(result)
		if convErr == nil {
			return total, nil
		}
		slog.WarnContext(ctx, "corrupt summary total, falling back to cached count",
			"value", result)
	} else if err != redis.Nil {
		return 0, errors.Wrapf(err, "failed to get summary total")
	}

	card, err := r.client.ZCard(ctx, summaryIndexKey).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count summary index")
	}
	return int(card), nil
}

func (r *redisRepository) GetSummary(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errIDNotSet)
	}

	row, err := r.getSummaryRow(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetSummaryOutput{Row: row}, nil
}

func (r *redisRepository) SetFavorite(ctx context.Context, input SetFavoriteInput) (*SetFavoriteOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errIDNotSet)
	}

	row, err := r.getSummaryRow(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	row.Favorite = input.Favorite
	data, err := json.Marshal(row)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal summary %d", input.ID)
	}
	if err := r.client.Set(ctx, summaryKey(input.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set favorite on pokemon %d", input.ID)
	}

	slog.DebugContext(ctx, "favorite flag updated",
		"pokemon_id", input.ID,
		"favorite", input.Favorite)

	return &SetFavoriteOutput{Row: row}, nil
}

func (r *redisRepository) UpsertDetails(ctx context.Context, input UpsertDetailsInput) (*UpsertDetailsOutput, error) {
	if input.Row.ID <= 0 {
		return nil, errors.InvalidArgument(errIDNotSet)
	}

	data, err := json.Marshal(input.Row)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal details %d", input.Row.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, detailsKey(input.Row.ID), data, 0)
	if input.Row.Name != "" {
		pipe.Set(ctx, nameIndexPrefix+input.Row.Name, strconv.Itoa(input.Row.ID), 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert details %d", input.Row.ID)
	}

	return &UpsertDetailsOutput{}, nil
}

func (r *redisRepository) GetDetails(ctx context.Context, input GetDetailsInput) (*GetDetailsOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errIDNotSet)
	}

	result, err := r.client.Get(ctx, detailsKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("pokemon %d not cached", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get details %d", input.ID)
	}

	var row codec.PokemonDetailsRow
	if err := json.Unmarshal([]byte(result), &row); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal details %d", input.ID)
	}
	return &GetDetailsOutput{Row: row}, nil
}

func (r *redisRepository) GetDetailsByName(
	ctx context.Context,
	input GetDetailsByNameInput,
) (*GetDetailsByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameNotSet)
	}

	idStr, err := r.client.Get(ctx, nameIndexPrefix+input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("pokemon %q not cached", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to resolve name %q", input.Name)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, errors.Internalf("corrupt name index entry for %q: %v", input.Name, err)
	}

	out, err := r.GetDetails(ctx, GetDetailsInput{ID: id})
	if err != nil {
		return nil, err
	}
	return &GetDetailsByNameOutput{Row: out.Row}, nil
}

func (r *redisRepository) getSummaryRow(ctx context.Context, id int) (codec.PokemonSummaryRow, error) {
	result, err := r.client.Get(ctx, summaryKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return codec.PokemonSummaryRow{}, errors.NotFoundf("pokemon %d not cached", id)
		}
		return codec.PokemonSummaryRow{}, errors.Wrapf(err, "failed to get summary %d", id)
	}

	var row codec.PokemonSummaryRow
	if err := json.Unmarshal([]byte(result), &row); err != nil {
		return codec.PokemonSummaryRow{}, errors.Wrapf(err, "failed to unmarshal summary %d", id)
	}
	return row, nil
}
