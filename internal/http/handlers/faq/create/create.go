// Package create реализует HTTP-обработчик добавления записей FAQ.
//
// Handler принимает JSON с вопросом и необязательным ответом, валидирует их,
// вызывает бизнес-логику создания записи и возвращает её в JSON-формате.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/answerhub/faq-service/internal/http/response"
	"github.com/answerhub/faq-service/internal/lib/sl"
	"github.com/answerhub/faq-service/internal/models"
)

// Request — входные данные новой записи FAQ.
// Ответ необязателен: при отсутствии сохраняется пустая строка.
type Request struct {
	Question string `json:"question" validate:"required,min=5"`
	Answer   string `json:"answer" validate:"omitempty,min=5"`
}

// Service описывает интерфейс бизнес-логики создания записи FAQ.
type Service interface {
	Create(ctx context.Context, question, answer string) (*models.Faq, error)
}

// Handler управляет HTTP-запросами на создание записей FAQ.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать запись FAQ
// @Description Создает новую запись вопрос-ответ. Требует роль user.
// @Tags Faqs
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Новая запись FAQ"
// @Success 200 {object} models.Faq "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /faqs [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.faq.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	faq, err := h.service.Create(r.Context(), req.Question, req.Answer)
	if err != nil {
		log.Error("failed to create faq", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create faq"))
		return
	}

	log.Info("success to create faq", slog.Int("id", faq.ID))
	render.JSON(w, r, faq)
}
