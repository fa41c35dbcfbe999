// Package models содержит доменную модель способа оплаты (Method),
// принадлежащего ровно одному пользователю, а также DTO для создания
// и частичного обновления.
package models

import "github.com/google/uuid"

// Допустимые значения вида способа оплаты.
const (
	KindBankAccount = "bank_account"
	KindCreditCard  = "credit_card"
	KindDebitCard   = "debit_card"
	KindCash        = "cash"
	KindOther       = "other"
)

// Method представляет способ оплаты пользователя: банковский счёт,
// карту, наличные и т.п. Подписки привязываются к методу по MethodID.
type Method struct {
	ID          uuid.UUID `json:"id"`          // Уникальный идентификатор
	Name        string    `json:"name"`        // Название метода
	Description *string   `json:"description"` // Описание, может отсутствовать
	Kind        string    `json:"kind"`        // Вид метода (bank_account, credit_card и т.д.)
	Color       *string   `json:"color"`       // Цвет для отображения, может отсутствовать
	Username    string    `json:"-"`           // Владелец метода
}

// MethodDraft — входные данные для создания способа оплаты.
type MethodDraft struct {
	Name        string  `json:"name" validate:"required,max=256"`
	Description *string `json:"description"`
	Kind        string  `json:"kind" validate:"required,oneof=bank_account credit_card debit_card cash other"`
	Color       *string `json:"color" validate:"omitempty,max=32"`
}

// MethodPatch — частичное обновление способа оплаты.
// Поля-указатели: nil означает "не менять", ненулевой указатель —
// установить новое значение, в том числе пустую строку.
type MethodPatch struct {
	Name        *string `json:"name" validate:"omitempty,max=256"`
	Description *string `json:"description"`
	Kind        *string `json:"kind" validate:"omitempty,oneof=bank_account credit_card debit_card cash other"`
	Color       *string `json:"color" validate:"omitempty,max=32"`
}

// Apply переносит заданные поля патча в метод.
func (p MethodPatch) Apply(m *Method) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.Kind != nil {
		m.Kind = *p.Kind
	}
	if p.Color != nil {
		m.Color = p.Color
	}
}
