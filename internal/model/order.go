package model

import "time"

// Order は注文を表す。
// チェックアウトトランザクションでOrderItemと同時に作成され、以後不変。
type Order struct {
	ID            int
	UserID        int
	Name          string
	Email         string
	Address       string
	City          string
	PostalCode    string
	Phone         string
	PaymentMethod string
	TotalAmount   float64
	CreatedAt     time.Time
}

// OrderItem は注文の明細行を表す。
// ProductNameは注文時点の商品名のスナップショット（非正規化）。
type OrderItem struct {
	OrderID     int
	ProductID   int
	ProductName string
	Quantity    int
	Price       float64
}
