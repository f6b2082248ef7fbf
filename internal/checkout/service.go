// Package checkout はカート検証とチェックアウトトランザクションを提供する。
package checkout

import (
	"context"
	"log/slog"

	"github.com/hitoshi/storefront/internal/model"
	"github.com/hitoshi/storefront/internal/repository"
)

// CartItem はカートの1行を表す。
type CartItem struct {
	ProductID int
	Name      string
	Quantity  int
	Price     float64
}

// Input はチェックアウト1回分の入力。
// UserIDはリクエストボディではなく認証済みコンテキストから渡すこと。
type Input struct {
	UserID        int
	Name          string
	Email         string
	Address       string
	City          string
	PostalCode    string
	Phone         string
	PaymentMethod string
	Items         []CartItem
	TotalAmount   float64
}

// MetricsRecorder はチェックアウト結果のメトリクス記録インターフェース。
type MetricsRecorder interface {
	RecordOrderCreated()
	RecordCheckoutFailure()
}

// Service はチェックアウト処理を提供する。
// 検証に通った場合のみトランザクションを開始し、注文と明細を
// 原子的に作成する。
type Service struct {
	orders  repository.OrderRepository
	metrics MetricsRecorder
}

// NewService はServiceを生成する。metricsはnil不可。
func NewService(orders repository.OrderRepository, metrics MetricsRecorder) *Service {
	return &Service{
		orders:  orders,
		metrics: metrics,
	}
}

// Checkout はカートと宛先を検証し、注文を作成して注文IDを返す。
//
// 処理順序:
//  1. 検証（空カート、宛先フィールド欠落はトランザクション開始前に拒否）
//  2. トランザクション開始〜注文行INSERT〜明細行INSERT〜コミット（リポジトリ層）
//  3. 失敗時は全体ロールバック済みのTransactionFailedエラーを返す
//
// 明細はカートの並び順のままINSERTする。重複商品IDの集約や数量の
// マージは行わない。
func (s *Service) Checkout(ctx context.Context, input Input) (int, error) {
	// 1. カート検証
	if len(input.Items) == 0 {
		return 0, model.NewEmptyCartError()
	}

	// 2. 宛先フィールド検証
	if input.Name == "" || input.Email == "" || input.Address == "" ||
		input.City == "" || input.PostalCode == "" || input.Phone == "" ||
		input.PaymentMethod == "" {
		return 0, model.NewMissingFieldsError()
	}

	order := &model.Order{
		UserID:        input.UserID,
		Name:          input.Name,
		Email:         input.Email,
		Address:       input.Address,
		City:          input.City,
		PostalCode:    input.PostalCode,
		Phone:         input.Phone,
		PaymentMethod: input.PaymentMethod,
		TotalAmount:   input.TotalAmount,
	}

	items := make([]model.OrderItem, 0, len(input.Items))
	for _, ci := range input.Items {
		items = append(items, model.OrderItem{
			ProductID:   ci.ProductID,
			ProductName: ci.Name,
			Quantity:    ci.Quantity,
			Price:       ci.Price,
		})
	}

	// 3. トランザクション実行
	orderID, err := s.orders.CreateOrder(ctx, order, items)
	if err != nil {
		s.metrics.RecordCheckoutFailure()
		slog.Error("checkout transaction failed",
			slog.Int("user_id", input.UserID),
			slog.Int("item_count", len(items)),
			slog.String("error", err.Error()),
		)
		return 0, model.NewTransactionFailedError()
	}

	s.metrics.RecordOrderCreated()
	slog.Info("order created",
		slog.Int("order_id", orderID),
		slog.Int("user_id", input.UserID),
		slog.Int("item_count", len(items)),
	)

	return orderID, nil
}
