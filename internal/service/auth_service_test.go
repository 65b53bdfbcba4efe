package service

import (
	"context"
	"testing"
	"time"

	"github.com/abdullah9786/nawab-products/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(repo *stubAdminRepo) *authService {
	return &authService{repo: repo, cfg: newTestCfg(), cost: bcrypt.MinCost}
}

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := newTestAuthService(repo)

	resp, created, err := svc.SeedAdmin(context.Background())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "admin@nawabkhana.com", resp.Email)
	assert.NotEmpty(t, resp.Hint)
	require.Len(t, repo.admins, 1)
	assert.NotEqual(t, "admin12345", repo.admins[0].PasswordHash)

	resp, created, err = svc.SeedAdmin(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "admin@nawabkhana.com", resp.Email)
	assert.Len(t, repo.admins, 1)
}

func TestEnsureAdmin_RejectsShortPassword(t *testing.T) {
	svc := newTestAuthService(&stubAdminRepo{})

	_, _, err := svc.EnsureAdmin(context.Background(), "owner@example.com", "short", "Owner")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "password must be at least 8 characters")
}

func TestLogin(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := newTestAuthService(repo)
	_, _, err := svc.EnsureAdmin(context.Background(), "Owner@Example.com", "correct-horse", "Owner")
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: " OWNER@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)
	assert.Equal(t, "owner@example.com", resp.Admin.Email)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Admin.ID, claims.AdminID)
	assert.Equal(t, "Owner", claims.Name)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := newTestAuthService(repo)
	_, _, err := svc.EnsureAdmin(context.Background(), "owner@example.com", "correct-horse", "Owner")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "owner@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidLogin)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestParseToken_Rejects(t *testing.T) {
	svc := newTestAuthService(&stubAdminRepo{})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		AdminID: "a",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tok, err := expired.SignedString([]byte(newTestCfg().JWTSecret))
	require.NoError(t, err)
	_, err = svc.ParseToken(tok)
	assert.ErrorIs(t, err, ErrUnauthorized)

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{AdminID: "a"})
	tok, err = wrongKey.SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = svc.ParseToken(tok)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdminStatus(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := newTestAuthService(repo)

	st, err := svc.AdminStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Exists)
	assert.Contains(t, st.Message, "/api/seed")

	_, _, err = svc.SeedAdmin(context.Background())
	require.NoError(t, err)

	st, err = svc.AdminStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Exists)
	assert.Equal(t, "admin@nawabkhana.com", st.Email)
}
