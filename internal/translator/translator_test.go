package translator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/answerhub/faq-service/internal/cache"
	"github.com/answerhub/faq-service/internal/config"
	"github.com/answerhub/faq-service/internal/models"
)

type ProviderMock struct{ mock.Mock }

func (m *ProviderMock) Translate(text, lang string) (string, error) {
	args := m.Called(text, lang)
	return args.String(0), args.Error(1)
}

// providerFunc стаб для тестов, где перевод должен зависеть от входа.
type providerFunc func(text, lang string) (string, error)

func (f providerFunc) Translate(text, lang string) (string, error) { return f(text, lang) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestCache(t *testing.T) *cache.Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	c, err := cache.InitServer(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)
	return c
}

func newTestService(provider Provider, c Cache) *Service {
	s := NewService(provider, c, discardLogger(), 3)
	s.baseDelay = time.Millisecond
	return s
}

func TestTranslateWithRetry_SucceedsAfterRateLimit(t *testing.T) {
	provider := new(ProviderMock)
	provider.On("Translate", "hello", "hi").
		Return("", errors.New("unexpected status: 429 Too Many Requests")).Twice()
	provider.On("Translate", "hello", "hi").
		Return("namaste", nil).Once()

	s := newTestService(provider, setupTestCache(t))

	start := time.Now()
	result, err := s.TranslateWithRetry("hello", "hi")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "namaste", result)
	provider.AssertNumberOfCalls(t, "Translate", 3)
	// Задержки растут экспоненциально: base×1 после первой ошибки, base×2 после второй.
	assert.GreaterOrEqual(t, elapsed, 3*time.Millisecond)
}

func TestTranslateWithRetry_NonRetryableError(t *testing.T) {
	provider := new(ProviderMock)
	provider.On("Translate", "hello", "hi").
		Return("", errors.New("unexpected status: 500 Internal Server Error")).Once()

	s := newTestService(provider, setupTestCache(t))

	_, err := s.TranslateWithRetry("hello", "hi")
	require.Error(t, err)
	provider.AssertNumberOfCalls(t, "Translate", 1)
}

func TestTranslateWithRetry_RetriesExhausted(t *testing.T) {
	provider := new(ProviderMock)
	provider.On("Translate", "hello", "hi").
		Return("", errors.New("unexpected status: 429 Too Many Requests"))

	s := newTestService(provider, setupTestCache(t))

	_, err := s.TranslateWithRetry("hello", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Too Many Requests")
	// Первый вызов плюс три повтора.
	provider.AssertNumberOfCalls(t, "Translate", 4)
}

func TestGetTranslatedFaq_SecondCallHitsCache(t *testing.T) {
	provider := new(ProviderMock)
	provider.On("Translate", "What is X?", "hi").Return("kya hai X?", nil).Once()
	provider.On("Translate", "X is Y", "hi").Return("X hai Y", nil).Once()

	s := newTestService(provider, setupTestCache(t))
	faq := models.Faq{ID: 1, Question: "What is X?", Answer: "X is Y"}

	first := s.GetTranslatedFaq(faq, "hi")
	assert.Equal(t, models.Faq{ID: 1, Question: "kya hai X?", Answer: "X hai Y"}, first)

	second := s.GetTranslatedFaq(faq, "hi")
	assert.Equal(t, first, second)

	// Повторный вызов не должен увеличить число обращений к провайдеру.
	provider.AssertNumberOfCalls(t, "Translate", 2)
}

// Частичное попадание в кеш считается промахом: оба поля запрашиваются заново.
func TestGetTranslatedFaq_PartialHitIsMiss(t *testing.T) {
	c := setupTestCache(t)
	require.NoError(t, c.Set(cache.TranslationKey(1, "question", "hi"), "cached question", time.Minute))

	provider := new(ProviderMock)
	provider.On("Translate", "What is X?", "hi").Return("fresh question", nil).Once()
	provider.On("Translate", "X is Y", "hi").Return("fresh answer", nil).Once()

	s := newTestService(provider, c)
	faq := models.Faq{ID: 1, Question: "What is X?", Answer: "X is Y"}

	result := s.GetTranslatedFaq(faq, "hi")

	assert.Equal(t, models.Faq{ID: 1, Question: "fresh question", Answer: "fresh answer"}, result)
	provider.AssertNumberOfCalls(t, "Translate", 2)
}

func TestGetTranslatedFaq_FallbackOnFailure(t *testing.T) {
	provider := new(ProviderMock)
	provider.On("Translate", mock.Anything, "hi").
		Return("", errors.New("provider is down"))

	c := setupTestCache(t)
	s := newTestService(provider, c)
	faq := models.Faq{ID: 5, Question: "What is X?", Answer: "X is Y"}

	result := s.GetTranslatedFaq(faq, "hi")

	// Отказ перевода не виден вызывающему: возвращается исходная запись.
	assert.Equal(t, faq, result)

	var out string
	found, err := c.Get(cache.TranslationKey(5, "question", "hi"), &out)
	require.NoError(t, err)
	assert.False(t, found, "failed translation must not be cached")
}

func TestGetTranslatedFaq_NoCacheAfterInvalidation(t *testing.T) {
	c := setupTestCache(t)

	calls := 0
	provider := providerFunc(func(text, _ string) (string, error) {
		calls++
		return fmt.Sprintf("v%d: %s", calls, text), nil
	})

	s := newTestService(provider, c)
	faq := models.Faq{ID: 3, Question: "old question", Answer: "old answer"}

	first := s.GetTranslatedFaq(faq, "hi")
	assert.Equal(t, "v1: old question", first.Question)

	// Инвалидация по префиксу, как при обновлении записи.
	require.NoError(t, c.InvalidateByPrefix(cache.FaqKeyPrefix(3)))

	updated := models.Faq{ID: 3, Question: "new question", Answer: "new answer"}
	second := s.GetTranslatedFaq(updated, "hi")
	assert.NotEqual(t, first.Question, second.Question)
	assert.Contains(t, second.Question, "new question")
}

func TestGetTranslatedFaqs_PreservesOrder(t *testing.T) {
	provider := providerFunc(func(text, lang string) (string, error) {
		return lang + ": " + text, nil
	})

	s := newTestService(provider, setupTestCache(t))

	faqs := []*models.Faq{
		{ID: 1, Question: "first question", Answer: "first answer"},
		{ID: 2, Question: "second question", Answer: "second answer"},
		{ID: 3, Question: "third question", Answer: "third answer"},
	}

	result := s.GetTranslatedFaqs(faqs, "hi")

	require.Len(t, result, len(faqs))
	for i, faq := range faqs {
		assert.Equal(t, faq.ID, result[i].ID)
		assert.Equal(t, "hi: "+faq.Question, result[i].Question)
		assert.Equal(t, "hi: "+faq.Answer, result[i].Answer)
	}
}

func TestGetTranslatedFaqs_Empty(t *testing.T) {
	s := newTestService(new(ProviderMock), setupTestCache(t))

	result := s.GetTranslatedFaqs(nil, "hi")
	assert.Empty(t, result)
}
