package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/storefront/internal/model"
)

// mockOrderRepo はrepository.OrderRepositoryのモック実装。
type mockOrderRepo struct {
	createOrderFn func(ctx context.Context, order *model.Order, items []model.OrderItem) (int, error)
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) (int, error) {
	if m.createOrderFn != nil {
		return m.createOrderFn(ctx, order, items)
	}
	return 1, nil
}

// mockMetrics はMetricsRecorderのモック実装。呼び出し回数を記録する。
type mockMetrics struct {
	ordersCreated    int
	checkoutFailures int
}

func (m *mockMetrics) RecordOrderCreated()    { m.ordersCreated++ }
func (m *mockMetrics) RecordCheckoutFailure() { m.checkoutFailures++ }

func validInput() Input {
	return Input{
		UserID:        7,
		Name:          "Alice",
		Email:         "alice@example.com",
		Address:       "Jl. Sudirman 1",
		City:          "Jakarta",
		PostalCode:    "10110",
		Phone:         "0811111111",
		PaymentMethod: "transfer",
		Items: []CartItem{
			{ProductID: 1, Name: "Keyboard", Quantity: 2, Price: 250000},
			{ProductID: 3, Name: "Mouse", Quantity: 1, Price: 120000},
		},
		TotalAmount: 620000,
	}
}

// 正常なチェックアウトで注文IDが返り、成功メトリクスが記録されることを確認
func TestService_Checkout_Success(t *testing.T) {
	var gotOrder *model.Order
	var gotItems []model.OrderItem
	repo := &mockOrderRepo{
		createOrderFn: func(ctx context.Context, order *model.Order, items []model.OrderItem) (int, error) {
			gotOrder = order
			gotItems = items
			return 42, nil
		},
	}
	metrics := &mockMetrics{}
	s := NewService(repo, metrics)

	orderID, err := s.Checkout(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if orderID != 42 {
		t.Errorf("orderID = %d, want 42", orderID)
	}

	if gotOrder == nil || gotOrder.UserID != 7 {
		t.Fatalf("unexpected order: %+v", gotOrder)
	}
	if len(gotItems) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(gotItems))
	}
	// 明細はカートの並び順のまま渡されること
	if gotItems[0].ProductID != 1 || gotItems[1].ProductID != 3 {
		t.Errorf("items out of order: %+v", gotItems)
	}
	if gotItems[0].ProductName != "Keyboard" {
		t.Errorf("ProductName = %q, want Keyboard", gotItems[0].ProductName)
	}

	if metrics.ordersCreated != 1 || metrics.checkoutFailures != 0 {
		t.Errorf("metrics = %+v, want 1 created / 0 failed", metrics)
	}
}

// 空カートはトランザクション開始前に拒否されることを確認
func TestService_Checkout_EmptyCart(t *testing.T) {
	repo := &mockOrderRepo{
		createOrderFn: func(ctx context.Context, order *model.Order, items []model.OrderItem) (int, error) {
			t.Error("CreateOrder must not be called for an empty cart")
			return 0, nil
		},
	}
	s := NewService(repo, &mockMetrics{})

	input := validInput()
	input.Items = nil

	_, err := s.Checkout(context.Background(), input)
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeEmptyCart {
		t.Errorf("error = %v, want empty cart error", err)
	}
}

// 宛先フィールド欠落はトランザクション開始前に拒否されることを確認
func TestService_Checkout_MissingFields(t *testing.T) {
	repo := &mockOrderRepo{
		createOrderFn: func(ctx context.Context, order *model.Order, items []model.OrderItem) (int, error) {
			t.Error("CreateOrder must not be called for invalid input")
			return 0, nil
		},
	}
	s := NewService(repo, &mockMetrics{})

	mutations := []func(*Input){
		func(in *Input) { in.Name = "" },
		func(in *Input) { in.Email = "" },
		func(in *Input) { in.Address = "" },
		func(in *Input) { in.City = "" },
		func(in *Input) { in.PostalCode = "" },
		func(in *Input) { in.Phone = "" },
		func(in *Input) { in.PaymentMethod = "" },
	}

	for i, mutate := range mutations {
		input := validInput()
		mutate(&input)

		_, err := s.Checkout(context.Background(), input)
		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeValidation {
			t.Errorf("case %d: error = %v, want validation error", i, err)
		}
	}
}

// トランザクション失敗時にTransactionFailedとなり、失敗メトリクスが記録されることを確認
func TestService_Checkout_TransactionFailed(t *testing.T) {
	repo := &mockOrderRepo{
		createOrderFn: func(ctx context.Context, order *model.Order, items []model.OrderItem) (int, error) {
			return 0, errors.New("deadlock detected")
		},
	}
	metrics := &mockMetrics{}
	s := NewService(repo, metrics)

	_, err := s.Checkout(context.Background(), validInput())
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeTransactionFailed {
		t.Errorf("error = %v, want transaction failed error", err)
	}

	if metrics.checkoutFailures != 1 || metrics.ordersCreated != 0 {
		t.Errorf("metrics = %+v, want 0 created / 1 failed", metrics)
	}
}
