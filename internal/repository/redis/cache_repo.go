package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	r "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"

	"github.com/tejarat-tech/catalog-backend/internal/cfg"
	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/internal/repository/redis/converter"
	"github.com/tejarat-tech/catalog-backend/pkg/clients"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

// CacheRepo — кэш разрешенных профилей классов в Redis.
// Промах и битая запись равнозначны: профиль пересобирается из хранилища.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProfileConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProfileConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Get возвращает закэшированный профиль класса или (nil, nil) при промахе.
func (c *CacheRepo) Get(ctx context.Context, classID int64) (*domain.ResolvedProfile, error) {
	key := c.profileKey(classID)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ResolvedProfileRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed for key %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	if model.ClassID != classID {
		c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", classID, model.ClassID)
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.conv.ToDomain(&model), nil
}

// Set кэширует профиль с TTL из конфигурации.
func (c *CacheRepo) Set(ctx context.Context, profile *domain.ResolvedProfile) error {
	model := c.conv.ToRedisModel(profile)

	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.profileKey(profile.ClassID), data, c.cfg.ProfileTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete удаляет профили перечисленных классов. Ошибка возвращается
// вызывающему: инвалидация после мутации обязана либо пройти, либо
// стать видимой.
func (c *CacheRepo) Delete(ctx context.Context, classIDs []int64) error {
	if len(classIDs) == 0 {
		return nil
	}

	keys := make([]string, len(classIDs))
	for i, id := range classIDs {
		keys[i] = c.profileKey(id)
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// profileKey возвращает Redis-ключ профиля одного класса
func (c *CacheRepo) profileKey(classID int64) string {
	return fmt.Sprintf("class:profile:%d", classID)
}
