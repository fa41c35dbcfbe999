// Package pagination разбирает параметры постраничного вывода
// из query-строки списковых эндпоинтов.
package pagination

import (
	"net/http"
	"strconv"
)

// Значения по умолчанию и верхняя граница размера страницы.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params — параметры постраничного вывода.
type Params struct {
	Limit  int
	Offset int
}

// FromRequest извлекает limit и offset из query-строки запроса.
// Некорректные и отрицательные значения заменяются значениями
// по умолчанию, limit ограничивается сверху.
func FromRequest(r *http.Request) Params {
	p := Params{Limit: DefaultLimit, Offset: 0}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Limit = v
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			p.Offset = v
		}
	}
	return p
}
