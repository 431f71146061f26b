package auth

import (
	"errors"
	"time"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid is returned for tokens that fail signature or claim
	// validation, including expired ones.
	ErrTokenInvalid = errors.New("invalid or expired token")

	// ErrTokenKindMismatch is returned when a refresh token is presented
	// where an access token is expected, or vice versa.
	ErrTokenKindMismatch = errors.New("token kind mismatch")
)

// Claims is the JWT payload carried by every issued token. Kind records the
// account role; Refresh distinguishes refresh tokens from access tokens so
// the two cannot be swapped.
type Claims struct {
	Kind    string `json:"kind"`
	Refresh bool   `json:"refresh"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim back into an account identifier.
func (c *Claims) AccountID() (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Subject)
}

// AccountKind parses the kind claim back into an account kind.
func (c *Claims) AccountKind() (account.Kind, error) {
	return account.KindFromString(c.Kind)
}

// TokenPair is an access/refresh token pair issued at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies HS256-signed bearer tokens. Each token
// carries a unique jti so logout can revoke it individually.
type TokenService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a token service with the given signing secret,
// issuer name, and token lifetimes.
func NewTokenService(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair issues an access/refresh token pair for the given account.
func (s *TokenService) IssuePair(accountID kernel.UUID, kind account.Kind) (TokenPair, error) {
	access, err := s.issue(accountID, kind, false, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := s.issue(accountID, kind, true, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) issue(accountID kernel.UUID, kind account.Kind, refresh bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Kind:    kind.String(),
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyAccess validates an access token and returns its claims.
func (s *TokenService) VerifyAccess(tokenString string) (*Claims, error) {
	return s.verify(tokenString, false)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (s *TokenService) VerifyRefresh(tokenString string) (*Claims, error) {
	return s.verify(tokenString, true)
}

func (s *TokenService) verify(tokenString string, refresh bool) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	if claims.Refresh != refresh {
		return nil, ErrTokenKindMismatch
	}

	return claims, nil
}
