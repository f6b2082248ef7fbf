// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// クライアントに返すメッセージと、ステータスコードへのマッピングに使う
// エラーコードを保持する。内部エラーの生テキストはここには入れない。
type APIError struct {
	Code     string // エラーコード
	Message  string // クライアント向けメッセージ
	Category string // カテゴリ: auth, validation, catalog, checkout, system
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidation         = "VALIDATION"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeNoToken            = "NO_TOKEN"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeTransactionFailed  = "TRANSACTION_FAILED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewMissingFieldsError は必須フィールド欠落エラーを生成する。
func NewMissingFieldsError() *APIError {
	return &APIError{
		Code:     ErrCodeValidation,
		Message:  "All fields are required",
		Category: "validation",
	}
}

// NewEmailTakenError はメールアドレス重複エラーを生成する。
func NewEmailTakenError() *APIError {
	return &APIError{
		Code:     ErrCodeEmailTaken,
		Message:  "Email already registered",
		Category: "validation",
	}
}

// NewUserNotFoundError はユーザー未登録エラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "User not found",
		Category: "auth",
	}
}

// NewInvalidCredentialsError はパスワード不一致エラーを生成する。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid credentials",
		Category: "auth",
	}
}

// NewNoTokenError はトークン未提示エラーを生成する。
func NewNoTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeNoToken,
		Message:  "No token provided",
		Category: "auth",
	}
}

// NewInvalidTokenError はトークン検証失敗エラーを生成する。
// 不正な形式・期限切れ・署名不一致は外部から区別できないよう単一のエラーに集約する。
func NewInvalidTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidToken,
		Message:  "Invalid token",
		Category: "auth",
	}
}

// NewProductNotFoundError は商品未検出エラーを生成する。
func NewProductNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeProductNotFound,
		Message:  "Product not found",
		Category: "catalog",
	}
}

// NewEmptyCartError は空カートエラーを生成する。
func NewEmptyCartError() *APIError {
	return &APIError{
		Code:     ErrCodeEmptyCart,
		Message:  "Cart is empty",
		Category: "validation",
	}
}

// NewTransactionFailedError はチェックアウトトランザクション失敗エラーを生成する。
// ロールバック完了後に返すこと。内部エラーの詳細はログにのみ記録する。
func NewTransactionFailedError() *APIError {
	return &APIError{
		Code:     ErrCodeTransactionFailed,
		Message:  "Transaction failed",
		Category: "checkout",
	}
}
