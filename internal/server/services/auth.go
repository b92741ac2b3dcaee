// Package services contains the application services: authentication and
// owner-scoped task operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mbelyaev/taskkeeper/internal/common"
	"github.com/mbelyaev/taskkeeper/internal/server/auth"
	"github.com/mbelyaev/taskkeeper/internal/server/config"
	"github.com/mbelyaev/taskkeeper/internal/server/models"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/repomanager"
)

// AuthResult is what a successful registration or login yields: a session
// token plus the account it belongs to.
type AuthResult struct {
	Token   string
	Account *models.Account
}

type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenIssuer

	// dummyHash is compared against on login when the email is unknown, so
	// the unknown-email path costs a hash verification just like the
	// wrong-password path.
	dummyHash string
}

// NewAuthService builds the service from config. A missing or empty signing
// secret is reported here and must abort startup.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*AuthService, error) {
	issuer, err := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token issuer init: %w", err)
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	dummyHash, err := hasher.Hash("taskkeeper-dummy")
	if err != nil {
		return nil, fmt.Errorf("hasher init: %w", err)
	}

	return &AuthService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      issuer,
		dummyHash:   dummyHash,
	}, nil
}

// NormalizeEmail lowercases and trims the identity key. All store lookups
// and the uniqueness constraint operate on this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and immediately issues a session token, so a
// fresh registration needs no follow-up login call. Duplicate detection is
// entirely the store's: there is no lookup before the create.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	repo := s.repomanager.Accounts(s.db)

	account, err = repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, common.ErrorEmailExists
		}
		return nil, common.ErrorInternal
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, Account: account}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both return common.ErrorInvalidCredentials; callers can never
// tell which one happened.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Keep the unknown-email path as expensive as a real verify.
			s.hasher.Verify(password, s.dummyHash)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, Account: account}, nil
}

// Profile returns the account for an already-authenticated id.
func (s *AuthService) Profile(ctx context.Context, accountID string) (*models.Account, error) {

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// VerifyToken resolves a session token to the account id it asserts. It is
// the verification contract the access guard calls on every protected
// request.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}
