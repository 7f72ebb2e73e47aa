// Package services содержит бизнес-логику работы с записями FAQ.
package services

import (
	"context"
	"log/slog"

	"github.com/answerhub/faq-service/internal/cache"
	"github.com/answerhub/faq-service/internal/lib/sl"
	"github.com/answerhub/faq-service/internal/models"
)

// FaqRepository определяет методы для работы с записями FAQ в хранилище.
type FaqRepository interface {
	// CreateFaq добавляет новую запись и возвращает её с присвоенным ID.
	CreateFaq(ctx context.Context, question, answer string) (*models.Faq, error)
	// ListFaqs возвращает все записи.
	ListFaqs(ctx context.Context) ([]*models.Faq, error)
	// UpdateFaq обновляет запись по ID.
	UpdateFaq(ctx context.Context, id int, question, answer string) (*models.Faq, error)
	// RemoveFaq удаляет запись по ID и возвращает количество удалённых строк.
	RemoveFaq(ctx context.Context, id int) (int64, error)
}

// Translator переводит записи FAQ на запрошенный язык.
type Translator interface {
	GetTranslatedFaqs(faqs []*models.Faq, lang string) []*models.Faq
}

// Invalidator описывает метод кеша для массовой инвалидации по префиксу.
type Invalidator interface {
	InvalidateByPrefix(prefix string) error
}

// FaqService реализует бизнес-логику работы с записями FAQ,
// включая инвалидацию кеша переводов при правках.
type FaqService struct {
	repo       FaqRepository
	translator Translator
	cache      Invalidator
	log        *slog.Logger
}

// NewFaqService создает новый экземпляр FaqService.
func NewFaqService(repo FaqRepository, translator Translator, cache Invalidator, log *slog.Logger) *FaqService {
	return &FaqService{
		repo:       repo,
		translator: translator,
		cache:      cache,
		log:        log,
	}
}

// Create сохраняет новую запись FAQ и возвращает её.
func (s *FaqService) Create(ctx context.Context, question, answer string) (*models.Faq, error) {
	faq, err := s.repo.CreateFaq(ctx, question, answer)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new faq", slog.Int("id", faq.ID))
	return faq, nil
}

// List возвращает все записи FAQ, переведённые на язык lang.
// Отказ перевода не является ошибкой: такие записи отдаются как есть.
func (s *FaqService) List(ctx context.Context, lang string) ([]*models.Faq, error) {
	faqs, err := s.repo.ListFaqs(ctx)
	if err != nil {
		return nil, err
	}
	return s.translator.GetTranslatedFaqs(faqs, lang), nil
}

// Update обновляет запись FAQ и удаляет все кешированные переводы этой
// записи: перевод не должен пережить правку вопроса или ответа.
func (s *FaqService) Update(ctx context.Context, id int, question, answer string) (*models.Faq, error) {
	faq, err := s.repo.UpdateFaq(ctx, id, question, answer)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated faq in storage", slog.Int("id", id))

	if err := s.cache.InvalidateByPrefix(cache.FaqKeyPrefix(id)); err != nil {
		s.log.Warn("failed to invalidate faq cache", slog.Int("id", id), sl.Err(err))
	}
	return faq, nil
}

// Remove удаляет запись FAQ по ID.
func (s *FaqService) Remove(ctx context.Context, id int) (int64, error) {
	count, err := s.repo.RemoveFaq(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("deleted faq", slog.Int("id", id), slog.Int64("count", count))
	return count, nil
}
