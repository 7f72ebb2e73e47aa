package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/answerhub/faq-service/internal/lib/jwt"
	"github.com/answerhub/faq-service/internal/lib/password"
	"github.com/answerhub/faq-service/internal/models"
	"github.com/answerhub/faq-service/internal/storage/repository"
)

type UserRepositoryMock struct{ mock.Mock }

func (m *UserRepositoryMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepositoryMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestMaker() jwt.Maker {
	return jwt.NewJWTMaker("test-secret-key", time.Hour)
}

func TestRegister_Success(t *testing.T) {
	repo := new(UserRepositoryMock)
	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Username == "testuser" && u.Role == models.RoleUser && u.PasswordHash != "password123"
	})).Return("uid-1", nil).Once()

	maker := newTestMaker()
	service := NewAuthService(repo, maker)

	token, err := service.Register(context.Background(), "testuser", "password123")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, models.RoleUser, claims.Role)
	// Хеш пароля попадает в токен регистрации, сам пароль — нет.
	assert.NotEmpty(t, claims.PasswordHash)
	assert.NotEqual(t, "password123", claims.PasswordHash)
	assert.NoError(t, password.CompareHash(claims.PasswordHash, "password123"))
	assert.Empty(t, claims.UserUID)
	repo.AssertExpectations(t)
}

func TestRegister_UserExists(t *testing.T) {
	repo := new(UserRepositoryMock)
	repo.On("RegisterUser", mock.Anything, mock.Anything).
		Return("", repository.ErrUserExists).Once()

	service := NewAuthService(repo, newTestMaker())

	_, err := service.Register(context.Background(), "testuser", "password123")
	require.ErrorIs(t, err, repository.ErrUserExists)
}

func TestCreateAdmin_Success(t *testing.T) {
	repo := new(UserRepositoryMock)
	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Role == models.RoleAdmin
	})).Return("uid-2", nil).Once()

	maker := newTestMaker()
	service := NewAuthService(repo, maker)

	token, err := service.CreateAdmin(context.Background(), "admin", "adminpass")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	repo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	hashed, err := password.GetHash("password123")
	require.NoError(t, err)

	repo := new(UserRepositoryMock)
	repo.On("GetUserByUsername", mock.Anything, "testuser").
		Return(&models.User{UID: "uid-1", Username: "testuser", PasswordHash: hashed, Role: models.RoleUser}, nil).Once()

	maker := newTestMaker()
	service := NewAuthService(repo, maker)

	token, err := service.Login(context.Background(), "testuser", "password123")
	require.NoError(t, err)

	// Токен входа несёт {id, role} и ничего лишнего.
	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserUID)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Empty(t, claims.Username)
	assert.Empty(t, claims.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, err := password.GetHash("password123")
	require.NoError(t, err)

	repo := new(UserRepositoryMock)
	repo.On("GetUserByUsername", mock.Anything, "testuser").
		Return(&models.User{UID: "uid-1", Username: "testuser", PasswordHash: hashed, Role: models.RoleUser}, nil).Once()

	service := NewAuthService(repo, newTestMaker())

	_, err = service.Login(context.Background(), "testuser", "wrongpassword")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StorageError(t *testing.T) {
	repo := new(UserRepositoryMock)
	repo.On("GetUserByUsername", mock.Anything, "testuser").
		Return(nil, errors.New("connection refused")).Once()

	service := NewAuthService(repo, newTestMaker())

	// Отказ хранилища не маскируется под неверные учетные данные.
	_, err := service.Login(context.Background(), "testuser", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(UserRepositoryMock)
	repo.On("GetUserByUsername", mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound).Once()

	service := NewAuthService(repo, newTestMaker())

	// Неизвестный пользователь неотличим от неверного пароля.
	_, err := service.Login(context.Background(), "ghost", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
