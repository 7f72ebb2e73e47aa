// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"

	"github.com/answerhub/faq-service/internal/lib/jwt"
	"github.com/answerhub/faq-service/internal/lib/password"
	"github.com/answerhub/faq-service/internal/models"
	"github.com/answerhub/faq-service/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неизвестном username или неверном пароле.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и выпуск JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с ролью "user" и возвращает токен.
// Токен регистрации несёт {username, password-hash, role} — см. lib/jwt.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (string, error) {
	return s.createUser(ctx, username, rawPassword, models.RoleUser)
}

// CreateAdmin создает пользователя с ролью "admin" и возвращает токен.
// Отдельный путь создания админа — единственный способ получить эту роль,
// конечной точки смены роли существующего пользователя нет.
func (s *AuthService) CreateAdmin(ctx context.Context, username, rawPassword string) (string, error) {
	return s.createUser(ctx, username, rawPassword, models.RoleAdmin)
}

func (s *AuthService) createUser(ctx context.Context, username, rawPassword, role string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
	}
	if _, err := s.users.RegisterUser(ctx, user); err != nil {
		return "", err
	}
	return s.jwtMaker.GenerateRegisterToken(username, hashed, role)
}

// Login проверяет пароль пользователя и возвращает токен входа с {id, role}.
// Неизвестный username и неверный пароль неразличимы для вызывающего;
// отказ хранилища возвращается как есть.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateLoginToken(user.UID, user.Role)
}
