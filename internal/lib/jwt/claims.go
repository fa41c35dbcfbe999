// Package jwt реализует выпуск и проверку подписанных bearer-токенов.
//
// Токен несёт стандартные claims: subject (имя пользователя), время
// выпуска и время истечения. Подпись — симметричная, HMAC-SHA256.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken выпускает JWT с subject равным username, подписывая его
// секретным ключом. Время жизни токена определяется полем tokenTTL.
func (j *MakerImpl) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken проверяет подпись и срок действия токена и возвращает
// subject. Повреждённый, неподписанный нашим ключом или истёкший токен
// даёт одну и ту же ошибку ErrInvalidToken.
func (j *MakerImpl) ParseToken(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
