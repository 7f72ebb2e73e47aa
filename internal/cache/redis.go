// Package cache реализует обёртку над Redis для кеширования переводов.
//
// Ключи переводов имеют вид faq_{id}_{field}_{lang} и собираются
// функцией TranslationKey, чтобы формат не расползался по коду.
// Потеря записи кеша — это промах, а не ошибка.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/answerhub/faq-service/internal/config"
)

// TranslationTTL время жизни записи перевода в кеше.
const TranslationTTL = 3600 * time.Second

// TranslationKey возвращает ключ кеша для перевода одного поля записи FAQ.
func TranslationKey(faqID int, field, lang string) string {
	return fmt.Sprintf("faq_%d_%s_%s", faqID, field, lang)
}

// FaqKeyPrefix возвращает префикс всех ключей кеша, относящихся к записи FAQ.
func FaqKeyPrefix(faqID int) string {
	return fmt.Sprintf("faq_%d_", faqID)
}

// Cache обёртка над клиентом Redis.
type Cache struct {
	Db *redis.Client
}

// InitServer открывает соединение с Redis и проверяет его пингом.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{Db: db}, nil
}

// Get пытается получить значение из кеша по ключу.
// Возвращает false без ошибки, если ключ отсутствует или истёк.
func (c *Cache) Get(key string, result any) (bool, error) {
	const op = "cache.Get"
	val, err := c.Db.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	err = json.Unmarshal([]byte(val), result)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет значение в кеш с временем жизни.
func (c *Cache) Set(key string, value any, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Db.Set(context.Background(), key, jsonData, expiration).Err()
}

// Invalidate удаляет значение из кеша по ключу.
func (c *Cache) Invalidate(key string) error {
	return c.Db.Del(context.Background(), key).Err()
}

// InvalidateByPrefix удаляет все ключи с заданным префиксом.
// Используется при обновлении записи FAQ: переводы не должны пережить правку.
func (c *Cache) InvalidateByPrefix(prefix string) error {
	const op = "cache.InvalidateByPrefix"
	ctx := context.Background()
	iter := c.Db.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.Db.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FlushAll полностью очищает кеш. Вызывается один раз при старте процесса.
func (c *Cache) FlushAll(ctx context.Context) error {
	const op = "cache.FlushAll"
	if err := c.Db.FlushAll(ctx).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
