// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/storefront/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.User, error)

	// Create はユーザーを作成し、生成されたIDを返す。
	Create(ctx context.Context, user *model.User) (int, error)
}

// ProductRepository は商品データの読み取りインターフェース。
// 商品データは外部管理のため書き込み操作は持たない。
type ProductRepository interface {
	// List は全商品を返す。フィルタ・ページネーションは行わない。
	List(ctx context.Context) ([]*model.Product, error)

	// FindByID は指定IDの商品を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.Product, error)
}

// OrderRepository は注文データの永続化インターフェース。
type OrderRepository interface {
	// CreateOrder は注文と明細行を単一トランザクションで作成し、
	// 生成された注文IDを返す。いずれかのINSERTが失敗した場合は
	// 全体をロールバックする。
	CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) (int, error)
}
