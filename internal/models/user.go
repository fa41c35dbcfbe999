// Package models содержит доменную модель пользователя системы,
// включающую имя учётной записи, хэш пароля и признак блокировки.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
// Username является натуральным первичным ключом.
type User struct {
	Username     string `json:"username"`  // Имя пользователя (уникальное)
	PasswordHash string `json:"-"`         // Argon2id-хэш пароля
	FullName     string `json:"full_name"` // Полное имя, может быть пустым
	Email        string `json:"email"`     // Электронная почта, может быть пустой
	Disabled     bool   `json:"-"`         // Заблокированный пользователь не проходит аутентификацию
}

// DisplayName возвращает полное имя пользователя,
// либо username, если полное имя не задано.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// RegisterRequest — входные данные для регистрации нового пользователя.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	FullName string `json:"full_name" validate:"omitempty,max=128"`
	Email    string `json:"email" validate:"omitempty,email,max=256"`
}
