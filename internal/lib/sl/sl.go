// Package sl дополняет стандартный slog небольшими помощниками
// для единообразных атрибутов лога.
package sl

import "log/slog"

// Err оборачивает ошибку в атрибут лога с ключом "error".
//
// Пример:
//
//	log.Error("failed to save method", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
