// Package jwt реализует выпуск и проверку подписанных bearer-токенов.
//
// Maker определяет интерфейс для создания и проверки JWT с subject-claim,
// MakerImpl — конкретная реализация с секретным ключом и сроком жизни.
package jwt

import (
	"errors"
	"time"
)

// ErrInvalidToken возвращается для любого непригодного токена:
// повреждённого, с неверной подписью или истёкшего. Конкретная причина
// наружу не раскрывается.
var ErrInvalidToken = errors.New("invalid token")

// Maker описывает интерфейс для выпуска и проверки JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен с subject равным username.
	GenerateToken(username string) (string, error)
	// ParseToken проверяет токен и возвращает subject (username).
	ParseToken(tokenStr string) (string, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
