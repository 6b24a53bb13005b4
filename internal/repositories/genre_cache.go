package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/redis/go-redis/v9"
)

const genreListKey = "genres:all"

// GenreCacheRepository caches the full genre list in Redis with a TTL. The
// list is reference data: read often, written rarely, and every write path
// invalidates the key, so TTL staleness only covers out-of-band edits.
type GenreCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewGenreCacheRepository creates a cache repository with the given TTL.
func NewGenreCacheRepository(client *redis.Client, expiration time.Duration) *GenreCacheRepository {
	return &GenreCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached genre list, or nil on a miss.
func (r *GenreCacheRepository) Get(ctx context.Context) ([]models.GenreDB, error) {
	val, err := r.client.Get(ctx, genreListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var genres []models.GenreDB
	if err := json.Unmarshal([]byte(val), &genres); err != nil {
		logger.Log.Errorw("failed to decode cached genres", "err", err)
		return nil, err
	}
	return genres, nil
}

// Set stores the genre list with the configured expiration.
func (r *GenreCacheRepository) Set(ctx context.Context, genres []models.GenreDB) error {
	data, err := json.Marshal(genres)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, genreListKey, data, r.exp).Err()
}

// Invalidate drops the cached list.
func (r *GenreCacheRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, genreListKey).Err()
}
