package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/career-navigator/apiserver/internal/auth"
	"github.com/career-navigator/apiserver/internal/password"
	"github.com/career-navigator/apiserver/internal/store"
	"github.com/career-navigator/apiserver/types"
	"github.com/google/uuid"
)

// ErrInvalidCredentials covers unknown email, wrong password and
// invalid, expired or malformed tokens. The cases are intentionally
// indistinguishable to callers so emails cannot be enumerated.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrWeakPassword rejects passwords below the minimum length.
var ErrWeakPassword = errors.New("password must be at least 8 characters")

const minPasswordLen = 8

// AuthService orchestrates register, login and identify over the
// password codec, the token issuer and the storage provider.
type AuthService struct {
	store  store.Store
	codec  *password.Codec
	tokens *auth.Issuer
	log    *slog.Logger
}

func NewAuthService(st store.Store, codec *password.Codec, tokens *auth.Issuer, log *slog.Logger) *AuthService {
	if log == nil {
		log = slog.Default()
	}
	return &AuthService{store: st, codec: codec, tokens: tokens, log: log}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account for the normalized email and returns it.
// A concurrent register for the same email yields store.ErrDuplicateEmail
// for all but one caller.
func (s *AuthService) Register(ctx context.Context, email, pwd, fullName string) (types.Account, error) {
	if len(pwd) < minPasswordLen {
		return types.Account{}, ErrWeakPassword
	}

	hash, err := s.codec.Encode(pwd)
	if err != nil {
		return types.Account{}, fmt.Errorf("encode password: %w", err)
	}

	acct := types.Account{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.store.CreateAccount(ctx, acct)
	if err != nil {
		return types.Account{}, err
	}

	s.log.InfoContext(ctx, "account registered", "account_id", created.ID)
	return created, nil
}

// Login verifies the credentials and returns a bearer token. Unknown
// email and wrong password both fail with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, pwd string) (string, error) {
	acct, err := s.store.GetAccountByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.codec.Verify(pwd, acct.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(acct.ID, acct.Email)
}

// Identify resolves a bearer token to its account. A valid token for an
// account that no longer exists fails like any other bad credential.
func (s *AuthService) Identify(ctx context.Context, token string) (types.Account, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", "reason", err)
		return types.Account{}, ErrInvalidCredentials
	}

	acct, err := s.store.GetAccountByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Account{}, ErrInvalidCredentials
		}
		return types.Account{}, err
	}
	return acct, nil
}
