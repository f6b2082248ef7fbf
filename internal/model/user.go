// Package model はドメインモデルを定義する。
package model

import "time"

// ユーザーロール。新規登録時のデフォルトはRoleBuyer。
const (
	RoleAdmin   = "admin"
	RoleCourier = "courier"
	RoleBuyer   = "buyer"
)

// User はストアの利用ユーザーを表す。
// PasswordHashはbcryptハッシュであり、平文パスワードは保持しない。
type User struct {
	ID           int
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
