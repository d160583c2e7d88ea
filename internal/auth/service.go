package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nidhisakhi/backend/internal/db"
)

var validate = validator.New()

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrNameRequired       = errors.New("name required")
	ErrSessionInvalid     = errors.New("session invalid")
)

type Repository interface {
	CreateUser(ctx context.Context, name, email, passwordHash, role string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUserByID(ctx context.Context, userID string) (*db.User, error)
	CreateSession(ctx context.Context, userID, refreshHash, userAgent, ipAddress string, expiresAt time.Time) (*db.Session, error)
	GetSessionByID(ctx context.Context, sessionID string) (*db.Session, error)
	RevokeSession(ctx context.Context, sessionID string) error
	UpdateSessionRefreshHash(ctx context.Context, sessionID, refreshHash string) error
}

type Service struct {
	repo       Repository
	jwt        *JWTManager
	accessTTL  time.Duration
	refreshTTL time.Duration
	adminEmail string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
	User         *db.User
}

// NewService wires the session service. Registrations using adminEmail are
// granted the admin role.
func NewService(repo Repository, jwt *JWTManager, accessTTL, refreshTTL time.Duration, adminEmail string) *Service {
	return &Service{
		repo:       repo,
		jwt:        jwt,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, name, email, password, userAgent, ipAddress string) (*AuthTokens, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email = NormalizeEmail(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	role := db.RoleUser
	if s.adminEmail != "" && email == s.adminEmail {
		role = db.RoleAdmin
	}

	user, err := s.repo.CreateUser(ctx, name, email, hash, role)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issue(ctx, user, userAgent, ipAddress)
}

func (s *Service) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*AuthTokens, error) {
	user, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, user, userAgent, ipAddress)
}

func (s *Service) Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*AuthTokens, error) {
	claims, err := s.jwt.Parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	session, err := s.repo.GetSessionByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	if session.RevokedAt != nil {
		return nil, ErrSessionInvalid
	}
	if time.Now().UTC().After(session.ExpiresAt) {
		return nil, ErrSessionInvalid
	}
	if session.RefreshTokenHash != hashToken(refreshToken) {
		return nil, ErrSessionInvalid
	}

	if err := s.repo.RevokeSession(ctx, session.ID); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return s.issue(ctx, user, userAgent, ipAddress)
}

// Logout is best effort: unparseable tokens are ignored.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwt.Parse(refreshToken)
	if err != nil {
		return nil
	}
	if claims.Type != TokenTypeRefresh || claims.SessionID == "" {
		return nil
	}
	return s.repo.RevokeSession(ctx, claims.SessionID)
}

func (s *Service) Me(ctx context.Context, userID string) (*db.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) issue(ctx context.Context, user *db.User, userAgent, ipAddress string) (*AuthTokens, error) {
	expiresAt := time.Now().UTC().Add(s.refreshTTL)
	sessionSeed := uuid.NewString()
	session, err := s.repo.CreateSession(ctx, user.ID, hashToken(sessionSeed), userAgent, ipAddress, expiresAt)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.Mint(user.ID, session.ID, user.Role, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.Mint(user.ID, session.ID, user.Role, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSessionRefreshHash(ctx, session.ID, hashToken(refreshToken)); err != nil {
		return nil, err
	}

	return &AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken, SessionID: session.ID, User: user}, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
