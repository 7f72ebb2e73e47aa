package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/answerhub/faq-service/internal/http/response"
	"github.com/answerhub/faq-service/internal/lib/sl"
	"github.com/answerhub/faq-service/internal/models"
)

// defaultLang язык перевода по умолчанию.
const defaultLang = "en"

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выдачи переведённого списка записей FAQ.
type Service interface {
	List(ctx context.Context, lang string) ([]*models.Faq, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP отдает все записи FAQ, переведённые на язык из query-параметра
// lang. Аутентификация не требуется. Отказ перевода не является ошибкой:
// такие записи возвращаются в исходном виде.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.faq.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = defaultLang
	}

	faqs, err := h.service.List(r.Context(), lang)
	if err != nil {
		log.Error("failed to list faqs", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list faqs"))
		return
	}
	if faqs == nil {
		faqs = []*models.Faq{}
	}

	log.Info("list faqs", slog.Int("count", len(faqs)), slog.String("lang", lang))
	render.JSON(w, r, faqs)
}
