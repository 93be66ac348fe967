package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
	"github.com/AdamaC336/bay2/pkg/log"
	"github.com/AdamaC336/bay2/pkg/utils"
)

// Session é o resultado de um login: o token assinado e o perfil público do usuário
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.UserProfile
}

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*Session, error)
	Me(ctx context.Context, claims *domain.Claims) (*domain.UserProfile, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	Logout(tokenString string) error
	PurgeExpiredSessions() int
}

type Service struct {
	userRepo repository.UserRepository
	cfg      config.Auth
	revoked  *RevocationList
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg.Auth,
		revoked:  NewRevocationList(),
		now:      time.Now,
	}
}

// WithClock troca o relógio usado para emitir e validar tokens
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "usuário e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao consultar usuário")
	}

	// usuário inexistente e senha errada respondem igual
	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "")
	}

	token, expiresAt, err := s.generateJWT(user)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar token de sessão")
		return nil, NewUserAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, user.ID, "")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Login realizado")

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Profile(),
	}, nil
}

// Me recarrega o usuário do token, uma sessão de usuário removido deixa de valer
func (s *Service) Me(ctx context.Context, claims *domain.Claims) (*domain.UserProfile, error) {
	user, err := s.userRepo.GetUser(ctx, claims.UserID)
	if err != nil {
		return nil, NewAuthError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrInvalidToken, claims.UserID, "")
	}

	return user.Profile(), nil
}

func (s *Service) generateJWT(user *domain.User) (string, time.Time, error) {
	sessionID, err := utils.GenerateID(utils.SessionIDSize)
	if err != nil {
		return "", time.Time{}, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.cfg.SessionTTL)

	claims := domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (s *Service) parse(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if s.revoked.IsRevoked(claims.ID) {
		return nil, NewUserAuthError(ErrRevokedToken, apiErrors.ErrRevokedToken, claims.UserID, "")
	}

	return claims, nil
}

// Logout encerra a sessão do token. Token inválido ou expirado não tem o que
// encerrar e não é tratado como erro.
func (s *Service) Logout(tokenString string) error {
	if tokenString == "" {
		return nil
	}

	claims, err := s.parse(tokenString)
	if err != nil {
		logrus.WithError(err).Debug("Logout com token inválido, nada a revogar")
		return nil
	}

	s.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
	logrus.WithField("user_id", claims.UserID).Info("Sessão encerrada")

	return nil
}

// PurgeExpiredSessions descarta da lista de revogação os tokens que já expiraram
func (s *Service) PurgeExpiredSessions() int {
	return s.revoked.Purge(s.now())
}
