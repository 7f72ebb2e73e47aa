package translator

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/answerhub/faq-service/internal/cache"
	"github.com/answerhub/faq-service/internal/lib/sl"
	"github.com/answerhub/faq-service/internal/models"
)

// Provider описывает внешний переводчик.
type Provider interface {
	Translate(text, lang string) (string, error)
}

// Cache описывает методы кеша, необходимые переводчику.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
}

// Service переводит записи FAQ, используя кеш с TTL и повторы
// с экспоненциальной задержкой при rate-limit ошибках провайдера.
//
// Отказ перевода никогда не виден вызывающему: после исчерпания повторов
// возвращается исходная непереведённая запись.
type Service struct {
	provider   Provider
	cache      Cache
	log        *slog.Logger
	maxRetries int
	baseDelay  time.Duration
}

// NewService создает новый экземпляр Service.
func NewService(provider Provider, cache Cache, log *slog.Logger, maxRetries int) *Service {
	return &Service{
		provider:   provider,
		cache:      cache,
		log:        log,
		maxRetries: maxRetries,
		baseDelay:  time.Second,
	}
}

// TranslateWithRetry вызывает провайдера и повторяет вызов до maxRetries раз,
// если текст ошибки указывает на rate-limit ("Too Many Requests").
// Задержка перед повтором — baseDelay × 2^attempt, attempt считается с нуля.
// Любая другая ошибка, как и исчерпание повторов, возвращается вызывающему.
func (s *Service) TranslateWithRetry(text, lang string) (string, error) {
	for attempt := 0; ; attempt++ {
		result, err := s.provider.Translate(text, lang)
		if err == nil {
			return result, nil
		}
		if attempt >= s.maxRetries || !strings.Contains(err.Error(), "Too Many Requests") {
			return "", err
		}
		providerRetries.Inc()
		delay := s.baseDelay * (1 << attempt)
		s.log.Warn("translation rate limited, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			sl.Err(err))
		time.Sleep(delay)
	}
}

// GetTranslatedFaq возвращает копию записи FAQ с вопросом и ответом,
// переведёнными на язык lang.
//
// Переводы полей кешируются независимо под ключами faq_{id}_{field}_{lang}.
// Частичное попадание считается промахом: оба поля запрашиваются заново.
// При любом итоговом отказе перевода возвращается исходная запись.
func (s *Service) GetTranslatedFaq(faq models.Faq, lang string) models.Faq {
	questionKey := cache.TranslationKey(faq.ID, "question", lang)
	answerKey := cache.TranslationKey(faq.ID, "answer", lang)

	var question, answer string
	questionHit, err := s.cache.Get(questionKey, &question)
	if err != nil {
		s.log.Warn("failed to read translation cache", slog.String("key", questionKey), sl.Err(err))
	}
	answerHit, err := s.cache.Get(answerKey, &answer)
	if err != nil {
		s.log.Warn("failed to read translation cache", slog.String("key", answerKey), sl.Err(err))
	}
	if questionHit && answerHit {
		cacheHits.Inc()
		return models.Faq{ID: faq.ID, Question: question, Answer: answer}
	}
	cacheMisses.Inc()

	// Поля переводятся параллельно и независимо друг от друга.
	texts := [2]string{faq.Question, faq.Answer}
	var results [2]string
	var errs [2]error
	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i], errs[i] = s.TranslateWithRetry(text, lang)
		}(i, text)
	}
	wg.Wait()

	if errs[0] != nil || errs[1] != nil {
		for _, err := range errs {
			if err != nil {
				s.log.Warn("translation failed, serving original text",
					slog.Int("faq_id", faq.ID),
					slog.String("lang", lang),
					sl.Err(err))
			}
		}
		return faq
	}

	if err := s.cache.Set(questionKey, results[0], cache.TranslationTTL); err != nil {
		s.log.Warn("failed to cache translation", slog.String("key", questionKey), sl.Err(err))
	}
	if err := s.cache.Set(answerKey, results[1], cache.TranslationTTL); err != nil {
		s.log.Warn("failed to cache translation", slog.String("key", answerKey), sl.Err(err))
	}

	return models.Faq{ID: faq.ID, Question: results[0], Answer: results[1]}
}

// GetTranslatedFaqs переводит каждую запись независимо и параллельно.
// Порядок результата совпадает с порядком входа вне зависимости от того,
// в каком порядке завершились переводы.
func (s *Service) GetTranslatedFaqs(faqs []*models.Faq, lang string) []*models.Faq {
	result := make([]*models.Faq, len(faqs))
	var wg sync.WaitGroup
	for i, faq := range faqs {
		wg.Add(1)
		go func(i int, faq models.Faq) {
			defer wg.Done()
			translated := s.GetTranslatedFaq(faq, lang)
			result[i] = &translated
		}(i, *faq)
	}
	wg.Wait()
	return result
}
