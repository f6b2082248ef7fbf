// Package seed は開発・デモ用のデフォルトユーザー投入を提供する。
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/storefront/internal/auth"
	"github.com/hitoshi/storefront/internal/model"
	"github.com/hitoshi/storefront/internal/repository"
)

// defaultUser は投入するデフォルトアカウントの定義。
type defaultUser struct {
	name     string
	email    string
	phone    string
	password string
	role     string
}

var defaultUsers = []defaultUser{
	{name: "Admin", email: "admin@gmail.com", phone: "08123456789", password: "123456789", role: model.RoleAdmin},
	{name: "Kurir1", email: "kurir@gmail.com", phone: "08121234567", password: "kurirpassword", role: model.RoleCourier},
}

// InsertDefaultUsers はデフォルトの管理者・配送員アカウントを投入する。
// 管理者アカウントが既に存在する場合は何もしない（冪等）。
func InsertDefaultUsers(ctx context.Context, users repository.UserRepository, hasher *auth.PasswordHasher) error {
	// 管理者の存在を代表チェックとして使う
	existing, err := users.FindByEmail(ctx, defaultUsers[0].email)
	if err != nil {
		return fmt.Errorf("failed to check default users: %w", err)
	}
	if existing != nil {
		slog.Info("default users already exist")
		return nil
	}

	for _, du := range defaultUsers {
		hash, err := hasher.Hash(du.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", du.email, err)
		}

		id, err := users.Create(ctx, &model.User{
			Name:         du.name,
			Email:        du.email,
			Phone:        du.phone,
			PasswordHash: hash,
			Role:         du.role,
		})
		if err != nil {
			return fmt.Errorf("failed to insert default user %s: %w", du.email, err)
		}

		slog.Info("default user inserted",
			slog.Int("user_id", id),
			slog.String("email", du.email),
			slog.String("role", du.role),
		)
	}

	return nil
}
