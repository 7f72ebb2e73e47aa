// Package models содержит структуры основных сущностей сервиса.
package models

// User представляет учетную запись пользователя.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	UID          string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Роли пользователей. Проверка роли — строгое сравнение строк,
// иерархии нет: admin не проходит проверку на роль user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
