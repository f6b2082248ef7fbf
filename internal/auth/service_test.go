package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hitoshi/storefront/internal/model"
)

// --- モック定義 ---

// mockUserRepo はrepository.UserRepositoryのモック実装。
type mockUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*model.User, error)
	findByIDFn    func(ctx context.Context, id int) (*model.User, error)
	createFn      func(ctx context.Context, user *model.User) (int, error)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (int, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return 1, nil
}

func newTestService(users *mockUserRepo) *Service {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService("test-secret", time.Hour)
	return NewService(users, hasher, tokens)
}

// --- Register テスト ---

// 全フィールドが揃った登録が成功し、buyerロールとハッシュ化パスワードで保存されることを確認
func TestService_Register_Success(t *testing.T) {
	var created *model.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) (int, error) {
			created = user
			return 7, nil
		},
	}
	s := newTestService(repo)

	user, err := s.Register(context.Background(), "Alice", "alice@example.com", "0811111111", "password123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.ID != 7 {
		t.Errorf("user.ID = %d, want 7", user.ID)
	}
	if created == nil {
		t.Fatal("expected Create to be called")
	}
	if created.Role != model.RoleBuyer {
		t.Errorf("role = %q, want %q", created.Role, model.RoleBuyer)
	}
	if created.PasswordHash == "password123" || created.PasswordHash == "" {
		t.Error("password must be stored as a bcrypt hash")
	}
}

// フィールド欠落時にValidationエラーとなり、DBに触れないことを確認
func TestService_Register_MissingFields(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			t.Error("FindByEmail must not be called for invalid input")
			return nil, nil
		},
	}
	s := newTestService(repo)

	cases := []struct {
		name, email, phone, password string
	}{
		{"", "a@example.com", "081", "pw"},
		{"Alice", "", "081", "pw"},
		{"Alice", "a@example.com", "", "pw"},
		{"Alice", "a@example.com", "081", ""},
	}

	for _, c := range cases {
		_, err := s.Register(context.Background(), c.name, c.email, c.phone, c.password)
		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeValidation {
			t.Errorf("Register(%+v) error = %v, want validation error", c, err)
		}
	}
}

// 登録済みメールアドレスでの再登録がConflictになることを確認
// （チェックとINSERTは別操作のため、同時登録はすり抜け得る既知の競合）
func TestService_Register_EmailTaken(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 1, Email: email}, nil
		},
		createFn: func(ctx context.Context, user *model.User) (int, error) {
			t.Error("Create must not be called when email is taken")
			return 0, nil
		},
	}
	s := newTestService(repo)

	_, err := s.Register(context.Background(), "Alice", "alice@example.com", "081", "pw")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeEmailTaken {
		t.Errorf("error = %v, want email taken error", err)
	}
}

// DB障害時は内部エラーとして伝播することを確認
func TestService_Register_RepoError(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := newTestService(repo)

	_, err := s.Register(context.Background(), "Alice", "alice@example.com", "081", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		t.Errorf("expected non-API internal error, got %v", err)
	}
}

// --- Login テスト ---

// 正しい認証情報でトークンとユーザーが返ることを確認
func TestService_Login_Success(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           7,
				Name:         "Alice",
				Email:        email,
				Phone:        "0811111111",
				PasswordHash: hash,
				Role:         model.RoleBuyer,
			}, nil
		},
	}
	s := newTestService(repo)

	token, user, err := s.Login(context.Background(), "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
	if user.ID != 7 || user.Role != model.RoleBuyer {
		t.Errorf("unexpected user: %+v", user)
	}

	// 発行されたトークンが検証を通ること
	userID, err := s.tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != 7 {
		t.Errorf("decoded userID = %d, want 7", userID)
	}
}

// 未登録メールアドレスでUserNotFoundとなることを確認
func TestService_Login_UserNotFound(t *testing.T) {
	s := newTestService(&mockUserRepo{})

	_, _, err := s.Login(context.Background(), "nobody@example.com", "pw")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeUserNotFound {
		t.Errorf("error = %v, want user not found error", err)
	}
}

// パスワード不一致でInvalidCredentialsとなり、トークンが発行されないことを確認
func TestService_Login_WrongPassword(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 7, Email: email, PasswordHash: hash}, nil
		},
	}
	s := newTestService(repo)

	token, _, err := s.Login(context.Background(), "alice@example.com", "wrong-password")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidCredentials {
		t.Errorf("error = %v, want invalid credentials error", err)
	}
	if token != "" {
		t.Error("token must be empty on failed login")
	}
}
