package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/storefront/internal/model"
	"github.com/hitoshi/storefront/internal/repository"
)

// Service はアカウント登録・ログインのビジネスロジックを提供する。
type Service struct {
	users  repository.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
}

// NewService はServiceを生成する。
func NewService(users repository.UserRepository, hasher *PasswordHasher, tokens *TokenService) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register は新規ユーザーを登録する。
// メールアドレスの重複チェックはSELECTの後にINSERTする方式であり、
// DBにUNIQUE制約は存在しない。同一メールアドレスの同時登録は
// 両方成功し得る（既知の競合ウィンドウ）。
func (s *Service) Register(ctx context.Context, name, email, phone, password string) (*model.User, error) {
	// 1. 必須フィールドの検証
	if name == "" || email == "" || phone == "" || password == "" {
		return nil, model.NewMissingFieldsError()
	}

	// 2. メールアドレスの重複チェック
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, model.NewEmailTakenError()
	}

	// 3. パスワードをハッシュ化して登録
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         model.RoleBuyer,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id

	slog.Info("user registered",
		slog.Int("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// Login はメールアドレスとパスワードを検証し、セッショントークンを発行する。
// ユーザーが存在しない場合とパスワード不一致の場合で異なるエラーを返す
// （既存APIの観察可能な挙動に合わせている）。
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	// 1. メールアドレスでユーザーを検索
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return "", nil, model.NewUserNotFoundError()
	}

	// 2. パスワードを検証
	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, model.NewInvalidCredentialsError()
	}

	// 3. トークンを発行
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in",
		slog.Int("user_id", user.ID),
		slog.String("role", user.Role),
	)

	return token, user, nil
}
