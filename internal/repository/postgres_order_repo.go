package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/storefront/internal/model"
)

// PostgresOrderRepo はPostgreSQLを使用した注文リポジトリ。
type PostgresOrderRepo struct {
	db *sql.DB
}

// NewPostgresOrderRepo はPostgresOrderRepoを生成する。
func NewPostgresOrderRepo(db *sql.DB) *PostgresOrderRepo {
	return &PostgresOrderRepo{db: db}
}

// CreateOrder は注文と明細行を単一トランザクションで作成し、生成された注文IDを返す。
// BeginTxがプールから専用コネクションを確保し、コミットまたはロールバックで
// 必ずプールへ返却される。明細行はitemsの順序どおりにINSERTする。
// created_atはサーバー時刻ではなくDBのNOW()を使用する。
func (r *PostgresOrderRepo) CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// コミット成功後のRollbackはno-opになる
	defer tx.Rollback()

	// 注文行を作成し、生成されたIDを取得
	var orderID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO list_order
		 (user_id, name, email, address, city, postal_code, phone, payment_method, total_amount, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		 RETURNING id`,
		order.UserID, order.Name, order.Email, order.Address, order.City,
		order.PostalCode, order.Phone, order.PaymentMethod, order.TotalAmount,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	// 明細行をカートの順序どおりに作成
	for _, item := range items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, price)
			 VALUES ($1, $2, $3, $4, $5)`,
			orderID, item.ProductID, item.ProductName, item.Quantity, item.Price,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return orderID, nil
}

// compile-time interface check
var _ OrderRepository = (*PostgresOrderRepo)(nil)
