package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/career-navigator/apiserver/internal/auth"
	"github.com/career-navigator/apiserver/internal/password"
	"github.com/career-navigator/apiserver/internal/services"
	"github.com/career-navigator/apiserver/internal/store"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()

	st, err := store.OpenFile(filepath.Join(t.TempDir(), "career_store.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	issuer, err := auth.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	return services.NewAuthService(st, password.New(password.SchemeBcrypt), issuer, nil)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc := newAuthService(t)

	acct, err := svc.Register(context.Background(), "  User@Example.Com ", "StrongPassw0rd!", " User ")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", acct.Email)
	require.Equal(t, "User", acct.FullName)
	require.NotEmpty(t, acct.ID)
}

func TestRegister_DuplicateNormalizedEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "user@example.com", "StrongPassw0rd!", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "USER@EXAMPLE.COM", "OtherPassw0rd!", "")
	require.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(context.Background(), "user@example.com", "short", "")
	require.ErrorIs(t, err, services.ErrWeakPassword)
}

func TestLogin_IndistinguishableFailures(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "user@example.com", "StrongPassw0rd!", "")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "user@example.com", "WrongPassw0rd!")
	_, unknownEmail := svc.Login(ctx, "ghost@example.com", "StrongPassw0rd!")

	require.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, services.ErrInvalidCredentials)
	require.Equal(t, wrongPassword, unknownEmail, "failure modes must be indistinguishable")
}

func TestLoginAndIdentify_RoundTrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "user@example.com", "StrongPassw0rd!", "User")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "User@Example.com", "StrongPassw0rd!")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	acct, err := svc.Identify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, acct.ID)
	require.Equal(t, "user@example.com", acct.Email)
}

func TestIdentify_RejectsTamperedToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "user@example.com", "StrongPassw0rd!", "")
	require.NoError(t, err)
	token, err := svc.Login(ctx, "user@example.com", "StrongPassw0rd!")
	require.NoError(t, err)

	_, err = svc.Identify(ctx, token+"x")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Identify(ctx, "not.a.jwt")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestIdentify_RejectsExpiredToken(t *testing.T) {
	st, err := store.OpenFile(filepath.Join(t.TempDir(), "career_store.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	issuer, err := auth.NewIssuer("test-secret", -1*time.Minute)
	require.NoError(t, err)
	svc := services.NewAuthService(st, password.New(password.SchemeBcrypt), issuer, nil)
	ctx := context.Background()

	_, err = svc.Register(ctx, "user@example.com", "StrongPassw0rd!", "")
	require.NoError(t, err)
	token, err := svc.Login(ctx, "user@example.com", "StrongPassw0rd!")
	require.NoError(t, err)

	_, err = svc.Identify(ctx, token)
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}
