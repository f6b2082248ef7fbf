package model

// Product は商品を表す。
// 商品データは外部システムが管理しており、本サービスからは読み取り専用。
type Product struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Image       string
}
