// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// Hash создает argon2id-хэш пароля для безопасного хранения. Соль и параметры
// работы алгоритма встроены в строку хэша, поэтому для проверки не требуется
// внешнее состояние. Verify сравнивает пароль с хэшем: несовпадение — это
// false без ошибки, повреждённый формат хэша — отдельная ошибка.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidHash возвращается, когда строка хэша не соответствует
// формату argon2id или повреждена.
var ErrInvalidHash = errors.New("invalid password hash format")

// Параметры argon2id для новых хэшей. Memory задаётся в KiB.
// Проверка использует параметры, встроенные в сам хэш.
const (
	argonMemory  = 64 * 1024
	argonTime    = 1
	argonThreads = 4
	saltLength   = 16
	keyLength    = 32
)

type hashParams struct {
	memory     uint32
	iterations uint32
	threads    uint8
}

// Hash принимает пароль пользователя и возвращает его argon2id-хэш
// в формате $argon2id$v=19$m=...,t=...,p=...$salt$hash.
func Hash(password string) (string, error) {
	const op = "password.Hash"
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, keyLength)
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
	return encoded, nil
}

// Verify сравнивает пароль с ранее сохранённым хэшем. Возвращает false
// при несовпадении; ошибка возможна только для повреждённого хэша.
func Verify(password, encodedHash string) (bool, error) {
	const op = "password.Verify"
	params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	other := argon2.IDKey([]byte(password), salt,
		params.iterations, params.memory, params.threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

// decodeHash разбирает строку формата PHC и возвращает параметры
// алгоритма, соль и ключ.
func decodeHash(encodedHash string) (params hashParams, salt, key []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, ErrInvalidHash
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&params.memory, &params.iterations, &params.threads); err != nil {
		return params, nil, nil, ErrInvalidHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, ErrInvalidHash
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, ErrInvalidHash
	}
	return params, salt, key, nil
}
