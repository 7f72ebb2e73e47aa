// Package faqservice предоставляет сборку и маршруты основного приложения.
package faqservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/answerhub/faq-service/internal/http/handlers/auth/createadmin"
	"github.com/answerhub/faq-service/internal/http/handlers/auth/login"
	"github.com/answerhub/faq-service/internal/http/handlers/auth/register"
	faqcreate "github.com/answerhub/faq-service/internal/http/handlers/faq/create"
	faqlist "github.com/answerhub/faq-service/internal/http/handlers/faq/list"
	faqremove "github.com/answerhub/faq-service/internal/http/handlers/faq/remove"
	faqupdate "github.com/answerhub/faq-service/internal/http/handlers/faq/update"
	"github.com/answerhub/faq-service/internal/http/middlewarectx"
	"github.com/answerhub/faq-service/internal/lib/jwt"
	"github.com/answerhub/faq-service/internal/models"
	authservice "github.com/answerhub/faq-service/internal/services/auth"
	faqsvc "github.com/answerhub/faq-service/internal/services/faq"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, authService *authservice.AuthService, faqService *faqsvc.FaqService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки. Маршрут create-admin сознательно
		// оставлен без аутентификации — см. internal/http/handlers/auth/createadmin.
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/create-admin", createadmin.New(logger, authService).ServeHTTP)
		r.Get("/faqs", faqlist.New(logger, faqService).ServeHTTP)

		// Создание записей FAQ — только для роли user
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RequireRole(models.RoleUser, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/faqs", faqcreate.New(logger, faqService).ServeHTTP)
		})

		// Правка и удаление — только для роли admin
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RequireRole(models.RoleAdmin, logger))
			r.Put("/faqs/{id}", faqupdate.New(logger, faqService).ServeHTTP)
			r.Delete("/faqs/{id}", faqremove.New(logger, faqService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
