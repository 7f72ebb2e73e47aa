package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/answerhub/faq-service/internal/models"
)

// CreateFaq добавляет новую запись FAQ и возвращает её с присвоенным ID.
func (s *Storage) CreateFaq(ctx context.Context, question, answer string) (*models.Faq, error) {
	const op = "storage.CreateFaq"

	faq := &models.Faq{Question: question, Answer: answer}
	query := `INSERT INTO faqs (question, answer)
			  VALUES ($1, $2)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query, question, answer).Scan(&faq.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return faq, nil
}

// ListFaqs возвращает все записи FAQ. Пагинации нет: полный проход по
// таблице приемлем на этом масштабе.
func (s *Storage) ListFaqs(ctx context.Context) ([]*models.Faq, error) {
	const op = "storage.ListFaqs"

	rows, err := s.DB.QueryContext(ctx, `SELECT id, question, answer FROM faqs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Faq
	for rows.Next() {
		var item models.Faq
		if err := rows.Scan(&item.ID, &item.Question, &item.Answer); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateFaq обновляет вопрос и ответ записи по ID и возвращает её.
// Если записи нет, возвращает ErrFaqNotFound.
func (s *Storage) UpdateFaq(ctx context.Context, id int, question, answer string) (*models.Faq, error) {
	const op = "storage.UpdateFaq"

	faq := &models.Faq{}
	query := `UPDATE faqs
			  SET question = $1, answer = $2
			  WHERE id = $3
			  RETURNING id, question, answer;`
	if err := s.DB.QueryRowContext(ctx, query, question, answer, id).
		Scan(&faq.ID, &faq.Question, &faq.Answer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrFaqNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return faq, nil
}

// RemoveFaq удаляет запись FAQ по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveFaq(ctx context.Context, id int) (int64, error) {
	const op = "storage.RemoveFaq"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
