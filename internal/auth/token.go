package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hitoshi/storefront/internal/model"
)

// tokenClaims はトークンに埋め込むクレーム。
// ユーザーIDはフィールド名 "id" で埋め込む（既存クライアントとの互換）。
type tokenClaims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

// TokenService はHS256署名のステートレスなセッショントークンを発行・検証する。
// トークンはサーバー側に永続化しない。
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService はTokenServiceを生成する。
// ttlが0以下の場合は1時間を使用する。
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue は指定ユーザーIDと有効期限を埋め込んだ署名付きトークンを発行する。
func (s *TokenService) Issue(userID int) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンの署名と有効期限を検証し、埋め込まれたユーザーIDを返す。
// 不正な形式・期限切れ・署名不一致はいずれも同一のInvalidTokenエラーに集約し、
// どの理由で失敗したかを外部に漏らさない。
func (s *TokenService) Verify(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return 0, model.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.UserID == 0 {
		return 0, model.NewInvalidTokenError()
	}

	return claims.UserID, nil
}
