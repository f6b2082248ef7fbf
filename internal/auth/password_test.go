package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// ハッシュ化したパスワードが元のパスワードで検証できることを確認
func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if hash == "secret-password" {
		t.Error("hash must not equal the plaintext password")
	}

	if !h.Verify("secret-password", hash) {
		t.Error("Verify() = false, want true for correct password")
	}
}

// 異なるパスワードでは検証が失敗することを確認
func TestPasswordHasher_Verify_WrongPassword(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if h.Verify("wrong-password", hash) {
		t.Error("Verify() = true, want false for wrong password")
	}
}

// 同一パスワードでもソルトにより毎回異なるハッシュになることを確認
func TestPasswordHasher_Hash_Salted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash1, err := h.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	hash2, err := h.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("expected different hashes for the same password")
	}
}

// 不正なハッシュ形式では検証が失敗することを確認
func TestPasswordHasher_Verify_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	if h.Verify("secret-password", "not-a-bcrypt-hash") {
		t.Error("Verify() = true, want false for malformed hash")
	}
}

// 有効範囲外のコストはデフォルトコストに丸められることを確認
func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	h := NewPasswordHasher(1000)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Errorf("unexpected hash format: %q", hash)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost() error = %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}
