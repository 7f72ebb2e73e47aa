// Package createadmin реализует HTTP-обработчик создания администратора.
//
// Маршрут не требует аутентификации и не валидирует входные данные —
// это известная слабость исходного контракта API, сохранённая сознательно.
// Исправление требует продуктового решения, а не тихой правки.
package createadmin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/answerhub/faq-service/internal/http/response"
	"github.com/answerhub/faq-service/internal/lib/sl"
	"github.com/answerhub/faq-service/internal/storage/repository"
)

// Request — входные данные для создания администратора
type Request struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service описывает интерфейс бизнес-логики создания администратора.
type Service interface {
	CreateAdmin(ctx context.Context, username, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы создания администратора.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.createadmin"

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

	token, err := h.service.CreateAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			log.Error("username already exists", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("username already exists"))
			return
		}
		log.Error("failed to create admin", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create admin"))
		return
	}

	log.Info("admin created", slog.String("username", req.Username))
	render.JSON(w, r, map[string]any{"token": token})
}
