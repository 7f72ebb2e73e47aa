package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/answerhub/faq-service/internal/config"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache, mr
}

func TestSetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)

	err := cache.Set("faq_1_question_hi", "translated question", time.Minute)
	require.NoError(t, err)

	var actual string
	found, err := cache.Get("faq_1_question_hi", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "translated question", actual)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out string
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetExpired(t *testing.T) {
	cache, mr := setupTestCache(t)

	err := cache.Set("faq_1_question_hi", "value", TranslationTTL)
	require.NoError(t, err)

	mr.FastForward(TranslationTTL + time.Second)

	var out string
	found, err := cache.Get("faq_1_question_hi", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache, _ := setupTestCache(t)

	err := cache.Set("key", "value", time.Minute)
	require.NoError(t, err)

	err = cache.Invalidate("key")
	require.NoError(t, err)

	var out string
	found, err := cache.Get("key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

// Инвалидация по префиксу должна удалять все переводы одной записи FAQ
// и не задевать переводы остальных.
func TestInvalidateByPrefix(t *testing.T) {
	cache, _ := setupTestCache(t)

	keys := []string{
		TranslationKey(7, "question", "hi"),
		TranslationKey(7, "answer", "hi"),
		TranslationKey(7, "question", "bn"),
	}
	for _, key := range keys {
		require.NoError(t, cache.Set(key, "value", time.Minute))
	}
	require.NoError(t, cache.Set(TranslationKey(70, "question", "hi"), "other", time.Minute))

	err := cache.InvalidateByPrefix(FaqKeyPrefix(7))
	require.NoError(t, err)

	var out string
	for _, key := range keys {
		found, err := cache.Get(key, &out)
		require.NoError(t, err)
		assert.False(t, found, "key %s must be invalidated", key)
	}

	found, err := cache.Get(TranslationKey(70, "question", "hi"), &out)
	require.NoError(t, err)
	assert.True(t, found, "keys of other faqs must survive")
}

func TestFlushAll(t *testing.T) {
	cache, _ := setupTestCache(t)

	require.NoError(t, cache.Set("faq_1_question_hi", "value", time.Minute))
	require.NoError(t, cache.Set("faq_2_answer_bn", "value", time.Minute))

	err := cache.FlushAll(context.Background())
	require.NoError(t, err)

	var out string
	found, err := cache.Get("faq_1_question_hi", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTranslationKey(t *testing.T) {
	assert.Equal(t, "faq_12_question_hi", TranslationKey(12, "question", "hi"))
	assert.Equal(t, "faq_12_answer_bn", TranslationKey(12, "answer", "bn"))
	assert.Equal(t, "faq_12_", FaqKeyPrefix(12))
}
