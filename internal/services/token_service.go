package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finn-budget/internal/config"
	"finn-budget/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeSession = "session"

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService signs and checks profile session tokens (RS256). A token's
// subject and profile_id claim both carry the profile id.
type TokenService struct {
	keys     config.JWTConfig
	now      func() time.Time
	sessions *jwt.Parser
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	ts := &TokenService{keys: *jwtConfig, now: time.Now}
	ts.sessions = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(jwtConfig.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return ts.now() }),
	)
	return ts
}

func (ts *TokenService) GenerateSessionToken(profileID uuid.UUID) (string, time.Time, error) {
	if profileID == uuid.Nil {
		return "", time.Time{}, fmt.Errorf("%w: nil profile id", ErrInvalidToken)
	}

	now := ts.now()
	expiresAt := now.Add(ts.keys.SessionTokenDuration)
	subject := profileID.String()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    ts.keys.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		ProfileID: subject,
		TokenType: TokenTypeSession,
	}).SignedString(ts.keys.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

func (ts *TokenService) ValidateSessionToken(raw string) (*models.SessionClaims, error) {
	if raw == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.SessionClaims{}
	if _, err := ts.sessions.ParseWithClaims(raw, claims, ts.publicKey); err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrInvalidIssuer
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	if claims.TokenType != TokenTypeSession {
		return nil, ErrInvalidTokenType
	}
	if _, err := uuid.Parse(claims.ProfileID); err != nil {
		return nil, fmt.Errorf("%w: profile id %q", ErrInvalidToken, claims.ProfileID)
	}
	return claims, nil
}

// ExtractTokenFromHeader returns the credentials of a "Bearer <token>"
// header. The scheme is case-insensitive.
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, credentials, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}
	if credentials = strings.TrimSpace(credentials); credentials == "" {
		return "", ErrInvalidAuthHeader
	}
	return credentials, nil
}

func (ts *TokenService) publicKey(*jwt.Token) (any, error) {
	return ts.keys.PublicKey, nil
}
