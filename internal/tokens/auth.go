package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// AccountClaims представляет данные JWT токена аккаунта.
type AccountClaims struct {
	jwt.RegisteredClaims
	AccountID uint   `json:"accountId"`
	Username  string `json:"username"`
}

// GenerateAccountJWT создает JWT токен для аккаунта.
//
// Параметры:
//   - accountID: идентификатор аккаунта
//   - username: имя пользователя
//   - expire: срок действия токена
//   - key: ключ для подписи токена
//
// Возвращает:
//   - string: сгенерированный JWT токен
//   - error: ошибка генерации токена
func GenerateAccountJWT(accountID uint, username string, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	accountClaims := AccountClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AccountID: accountID,
		Username:  username,
	}
	token, err := generateJWT(accountClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating account jwt token: %w", err)
	}
	return token, nil
}

// ValidateAccountJWT проверяет JWT токен аккаунта и возвращает его данные.
//
// Возвращает:
//   - *AccountClaims: данные проверенного токена
//   - error: ошибка проверки (ErrTokenExpired если истек срок действия)
func ValidateAccountJWT(tokenString string, key []byte) (*AccountClaims, error) {
	token, err := validateJWT(tokenString, new(AccountClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating account jwt token: %w", err)
	}

	claims, ok := token.Claims.(*AccountClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
