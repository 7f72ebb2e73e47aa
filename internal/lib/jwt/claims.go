package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
//
// Состав полей несимметричный: токен входа несёт {id, role}, токен
// регистрации — {username, password-hash, role}. Несимметричность
// унаследована от исходного контракта API и сохранена сознательно,
// авторизация в обоих случаях опирается только на поле role.
type CustomClaims struct {
	UserUID              string `json:"id,omitempty"`       // Идентификатор пользователя (токен входа)
	Username             string `json:"username,omitempty"` // Имя пользователя (токен регистрации)
	PasswordHash         string `json:"password,omitempty"` // bcrypt-хэш пароля (токен регистрации)
	Role                 string `json:"role"`               // Роль пользователя
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// GenerateLoginToken создает JWT токен входа с claims {id, role},
// подписывая его секретным ключом. Время жизни определяется tokenTTL.
func (j *MakerImpl) GenerateLoginToken(userUID, role string) (string, error) {
	claims := CustomClaims{
		UserUID: userUID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GenerateRegisterToken создает JWT токен регистрации с claims
// {username, password-hash, role}.
func (j *MakerImpl) GenerateRegisterToken(username, passwordHash, role string) (string, error) {
	claims := CustomClaims{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и валидность,
// возвращает CustomClaims с данными, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
