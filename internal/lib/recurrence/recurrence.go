// Package recurrence вычисляет дату следующего платежа регулярной
// подписки: первую дату вида purchasedAt + k*шаг, строго позднее
// сегодняшней. Шаг календарный: месяц и год сдвигают календарные
// месяцы и годы, а не фиксированное число дней.
//
// Количество шагов считается арифметически, без пошагового перебора
// дат, поэтому давность последней оплаты на время вычисления не влияет.
package recurrence

import (
	"fmt"
	"time"
)

// Допустимые единицы периода.
const (
	UnitDay   = "day"
	UnitWeek  = "week"
	UnitMonth = "month"
	UnitYear  = "year"
)

// NextPaymentDate возвращает первую дату платежа строго позднее today.
// purchasedAt — дата последней оплаты, period и unit задают шаг.
// Если purchasedAt уже позднее today, она и возвращается: оплата ещё
// не наступила.
//
// Для месяцев и лет день месяца прижимается к концу короткого месяца:
// 31 января + 1 месяц = 29 февраля (в високосный год), а не 2 марта.
func NextPaymentDate(purchasedAt time.Time, period int, unit string, today time.Time) (time.Time, error) {
	const op = "recurrence.NextPaymentDate"
	if period <= 0 {
		return time.Time{}, fmt.Errorf("%s: period must be positive, got %d", op, period)
	}

	purchased := truncateToDay(purchasedAt)
	day := truncateToDay(today)
	if purchased.After(day) {
		return purchased, nil
	}

	switch unit {
	case UnitDay, UnitWeek:
		stepDays := period
		if unit == UnitWeek {
			stepDays *= 7
		}
		elapsed := int(day.Sub(purchased).Hours() / 24)
		steps := elapsed/stepDays + 1
		return purchased.AddDate(0, 0, steps*stepDays), nil

	case UnitMonth, UnitYear:
		stepMonths := period
		if unit == UnitYear {
			stepMonths *= 12
		}
		elapsed := (day.Year()-purchased.Year())*12 + int(day.Month()) - int(purchased.Month())
		steps := elapsed / stepMonths
		next := addMonthsClamped(purchased, steps*stepMonths)
		// Из-за выравнивания дня месяца кандидат может не перейти за
		// today; тогда нужен ещё максимум один шаг.
		for !next.After(day) {
			steps++
			next = addMonthsClamped(purchased, steps*stepMonths)
		}
		return next, nil

	default:
		return time.Time{}, fmt.Errorf("%s: invalid period unit: %q", op, unit)
	}
}

// addMonthsClamped прибавляет к дате календарные месяцы, прижимая день
// к последнему дню короткого месяца вместо переноса в следующий.
func addMonthsClamped(t time.Time, months int) time.Time {
	total := t.Year()*12 + int(t.Month()) - 1 + months
	year, month := total/12, time.Month(total%12+1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// daysInMonth возвращает число дней в месяце.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
