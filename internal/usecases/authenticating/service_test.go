package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdamaC336/bay2/infrastructure/repository/mocks"
	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestService(t *testing.T) (*mocks.MockStorage, *Service, *clock) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	clk := &clock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}

	cfg := &config.Config{Auth: config.Auth{Secret: "segredo-de-teste", SessionTTL: time.Hour}}
	return store, NewService(store, cfg).WithClock(clk.Now), clk
}

func adminUser(t *testing.T) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	require.NoError(t, err)

	name := "Admin User"
	return &domain.User{ID: 1, Username: "admin", PasswordHash: string(hash), Name: &name, Role: domain.RoleAdmin}
}

func requireAuthCode(t *testing.T, err error, code string) {
	t.Helper()

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperava *AuthError, recebeu %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestLogin(t *testing.T) {
	store, service, clk := newTestService(t)
	ctx := context.Background()

	store.EXPECT().GetUserByUsername(ctx, "admin").Return(adminUser(t), nil)

	session, err := service.Login(ctx, " admin ", "admin")

	require.NoError(t, err)
	assert.Equal(t, "admin", session.User.Username)
	assert.Equal(t, domain.RoleAdmin, session.User.Role)
	assert.Equal(t, clk.now.Add(time.Hour), session.ExpiresAt)

	claims, err := service.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Len(t, claims.ID, 21)
}

func TestLoginFailures(t *testing.T) {
	store, service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "", "x")
	requireAuthCode(t, err, apiErrors.ErrMissingRequiredData)

	store.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, nil)
	_, err = service.Login(ctx, "ghost", "x")
	requireAuthCode(t, err, apiErrors.ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	store.EXPECT().GetUserByUsername(ctx, "admin").Return(adminUser(t), nil)
	_, err = service.Login(ctx, "admin", "errada")
	requireAuthCode(t, err, apiErrors.ErrInvalidCredentials)

	store.EXPECT().GetUserByUsername(ctx, "admin").Return(nil, errors.New("sem conexão"))
	_, err = service.Login(ctx, "admin", "admin")
	requireAuthCode(t, err, apiErrors.ErrDatabaseOperation)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestLoginRejectsPlaintextPassword(t *testing.T) {
	store, service, _ := newTestService(t)

	store.EXPECT().GetUserByUsername(gomock.Any(), "admin").
		Return(&domain.User{ID: 1, Username: "admin", PasswordHash: "admin", Role: domain.RoleAdmin}, nil)

	_, err := service.Login(context.Background(), "admin", "admin")
	requireAuthCode(t, err, apiErrors.ErrInvalidCredentials)
}

func TestValidateTokenExpired(t *testing.T) {
	store, service, clk := newTestService(t)

	store.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(adminUser(t), nil)
	session, err := service.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)

	clk.now = clk.now.Add(2 * time.Hour)

	_, err = service.ValidateToken(session.Token)
	requireAuthCode(t, err, apiErrors.ErrExpiredToken)
	assert.True(t, IsSessionError(err))
}

func TestValidateTokenRejectsOtherSecretAndAlgorithm(t *testing.T) {
	_, service, clk := newTestService(t)

	claims := domain.Claims{
		UserID: 1,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "abc",
			ExpiresAt: jwt.NewNumericDate(clk.now.Add(time.Hour)),
		},
	}

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("outro-segredo"))
	require.NoError(t, err)
	_, err = service.ValidateToken(forged)
	requireAuthCode(t, err, apiErrors.ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = service.ValidateToken(unsigned)
	requireAuthCode(t, err, apiErrors.ErrInvalidToken)

	_, err = service.ValidateToken("não-é-um-jwt")
	requireAuthCode(t, err, apiErrors.ErrInvalidToken)
}

func TestLogoutRevokesSession(t *testing.T) {
	store, service, clk := newTestService(t)

	store.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(adminUser(t), nil).Times(2)
	first, err := service.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)
	second, err := service.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)

	require.NoError(t, service.Logout(first.Token))

	_, err = service.ValidateToken(first.Token)
	requireAuthCode(t, err, apiErrors.ErrRevokedToken)
	assert.ErrorIs(t, err, ErrRevokedToken)

	_, err = service.ValidateToken(second.Token)
	assert.NoError(t, err, "outras sessões do mesmo usuário continuam válidas")

	assert.NoError(t, service.Logout(""))
	assert.NoError(t, service.Logout("lixo"))

	assert.Equal(t, 0, service.PurgeExpiredSessions(), "revogação vale até a expiração do token")

	clk.now = clk.now.Add(time.Hour)
	assert.Equal(t, 1, service.PurgeExpiredSessions())
	assert.Equal(t, 0, service.revoked.Len())
}

func TestMe(t *testing.T) {
	store, service, _ := newTestService(t)
	ctx := context.Background()

	store.EXPECT().GetUser(ctx, 1).Return(adminUser(t), nil)
	profile, err := service.Me(ctx, &domain.Claims{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Admin User", *profile.Name)

	store.EXPECT().GetUser(ctx, 2).Return(nil, nil)
	_, err = service.Me(ctx, &domain.Claims{UserID: 2})
	requireAuthCode(t, err, apiErrors.ErrInvalidToken)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRevocationListPurge(t *testing.T) {
	list := NewRevocationList()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	list.Revoke("a", now.Add(-time.Minute))
	list.Revoke("b", now)
	list.Revoke("c", now.Add(time.Minute))

	assert.True(t, list.IsRevoked("a"))
	assert.Equal(t, 2, list.Purge(now))
	assert.False(t, list.IsRevoked("a"))
	assert.True(t, list.IsRevoked("c"))
	assert.Equal(t, 1, list.Len())
}
