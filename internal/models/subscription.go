// Package models содержит доменную модель регулярной подписки,
// привязанной к способу оплаты, а также DTO для создания
// и частичного обновления.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Допустимые единицы периода подписки.
const (
	UnitDay   = "day"
	UnitWeek  = "week"
	UnitMonth = "month"
	UnitYear  = "year"
)

// DateLayout — формат дат во внешнем API. Время суток не хранится.
const DateLayout = "2006-01-02"

// Subscription представляет регулярный платёж, привязанный к способу
// оплаты. Период задаётся парой (Period, PeriodUnit): например,
// Period=2, PeriodUnit=week — платёж раз в две недели.
type Subscription struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`    // Точная десятичная цена
	Currency    string          `json:"currency"` // Код валюты, например EUR
	Period      int             `json:"period"`
	PeriodUnit  string          `json:"period_unit"`
	PurchasedAt time.Time       `json:"purchased_at"` // Дата последней оплаты
	IsActive    bool            `json:"is_active"`
	MethodID    uuid.UUID       `json:"-"`
}

// SubscriptionDraft — входные данные для создания подписки.
// Period по умолчанию равен 1, PurchasedAt — сегодняшней дате,
// IsActive — true.
type SubscriptionDraft struct {
	Name        string          `json:"name" validate:"required,max=256"`
	Description *string         `json:"description" validate:"omitempty,max=256"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Currency    string          `json:"currency" validate:"required,max=8"`
	Period      int             `json:"period" validate:"omitempty,gt=0"`
	PeriodUnit  string          `json:"period_unit" validate:"required,oneof=day week month year"`
	PurchasedAt string          `json:"purchased_at" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool           `json:"is_active"`
}

// SubscriptionPatch — частичное обновление подписки. Поля-указатели:
// nil означает "не менять", ненулевой указатель — установить новое
// значение, в том числе false или пустую строку.
type SubscriptionPatch struct {
	Name        *string          `json:"name" validate:"omitempty,max=256"`
	Description *string          `json:"description" validate:"omitempty,max=256"`
	Price       *decimal.Decimal `json:"price"`
	Currency    *string          `json:"currency" validate:"omitempty,max=8"`
	Period      *int             `json:"period" validate:"omitempty,gt=0"`
	PeriodUnit  *string          `json:"period_unit" validate:"omitempty,oneof=day week month year"`
	PurchasedAt *string          `json:"purchased_at" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool            `json:"is_active"`
}

// Apply переносит заданные поля патча в подписку. Дата PurchasedAt
// должна быть проверена валидатором до вызова.
func (p SubscriptionPatch) Apply(sub *Subscription) {
	if p.Name != nil {
		sub.Name = *p.Name
	}
	if p.Description != nil {
		sub.Description = p.Description
	}
	if p.Price != nil {
		sub.Price = *p.Price
	}
	if p.Currency != nil {
		sub.Currency = *p.Currency
	}
	if p.Period != nil {
		sub.Period = *p.Period
	}
	if p.PeriodUnit != nil {
		sub.PeriodUnit = *p.PeriodUnit
	}
	if p.PurchasedAt != nil {
		if d, err := time.Parse(DateLayout, *p.PurchasedAt); err == nil {
			sub.PurchasedAt = d
		}
	}
	if p.IsActive != nil {
		sub.IsActive = *p.IsActive
	}
}
