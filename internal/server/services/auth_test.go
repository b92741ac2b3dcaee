package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mbelyaev/taskkeeper/internal/common"
	"github.com/mbelyaev/taskkeeper/internal/server/auth"
	"github.com/mbelyaev/taskkeeper/internal/server/config"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/repomanager"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  bcrypt.MinCost,
	}
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	s, err := NewAuthService(nil, repomanager.NewMemoryRepositoryManager(), testConfig())
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}
	return s
}

func TestNewAuthService_EmptySecretIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey = ""

	_, err := NewAuthService(nil, repomanager.NewMemoryRepositoryManager(), cfg)
	if err == nil {
		t.Fatalf("expected startup error for empty secret")
	}
}

func TestRegister_IssuesUsableToken(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	res, err := s.Register(ctx, "John Doe", "  John@Example.COM ", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token from registration")
	}
	if res.Account.Email != "john@example.com" {
		t.Fatalf("email not normalized: %q", res.Account.Email)
	}

	accountID, err := s.VerifyToken(res.Token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if accountID != res.Account.ID {
		t.Fatalf("token subject mismatch: got %q want %q", accountID, res.Account.ID)
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "a", "john@example.com", "pw-one"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := s.Register(ctx, "b", "JOHN@EXAMPLE.COM", "pw-two")
	if !errors.Is(err, common.ErrorEmailExists) {
		t.Fatalf("expected common.ErrorEmailExists, got %v", err)
	}
}

func TestRegister_ConcurrentSameEmail_OneWinner(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Register(ctx, "racer", "race@example.com", "secret123")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, common.ErrorEmailExists):
		default:
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
}

func TestRegister_PasswordTooLong(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Register(context.Background(), "n", "long@example.com", strings.Repeat("x", auth.MaxPasswordLength+1))
	if !errors.Is(err, auth.ErrPasswordTooLong) {
		t.Fatalf("expected auth.ErrPasswordTooLong, got %v", err)
	}
}

func TestLogin_WrongPasswordAndUnknownEmail_SameError(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "n", "known@example.com", "right-password"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, errWrongPw := s.Login(ctx, "known@example.com", "wrong-password")
	_, errNoUser := s.Login(ctx, "missing@example.com", "whatever")

	if !errors.Is(errWrongPw, common.ErrorInvalidCredentials) {
		t.Fatalf("wrong password: expected common.ErrorInvalidCredentials, got %v", errWrongPw)
	}
	if !errors.Is(errNoUser, common.ErrorInvalidCredentials) {
		t.Fatalf("unknown email: expected common.ErrorInvalidCredentials, got %v", errNoUser)
	}
}

func TestLogin_Success(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	reg, err := s.Register(ctx, "n", "login@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	res, err := s.Login(ctx, "Login@Example.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	accountID, err := s.VerifyToken(res.Token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if accountID != reg.Account.ID {
		t.Fatalf("token subject mismatch: got %q want %q", accountID, reg.Account.ID)
	}
}

func TestVerifyToken_ForeignSecret(t *testing.T) {
	s := newAuthService(t)

	foreignCfg := testConfig()
	foreignCfg.SecretKey = "other-secret"
	foreign, err := NewAuthService(nil, repomanager.NewMemoryRepositoryManager(), foreignCfg)
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	res, err := foreign.Register(context.Background(), "n", "f@example.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err = s.VerifyToken(res.Token)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestProfile_ReturnsAccount(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	reg, err := s.Register(ctx, "John Doe", "profile@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	account, err := s.Profile(ctx, reg.Account.ID)
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if account.Name != "John Doe" || account.Email != "profile@example.com" {
		t.Fatalf("unexpected profile: %+v", account)
	}
}
