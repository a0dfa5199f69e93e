package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"finn-budget/internal/config"
	"finn-budget/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    TokenServiceInterface
	issuer     string
	duration   time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.duration = 24 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               s.issuer,
		SessionTokenDuration: s.duration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateSessionToken() {
	token, expiresAt, err := s.service.GenerateSessionToken(uuid.New())
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(25 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateSessionToken_NilProfile() {
	token, _, err := s.service.GenerateSessionToken(uuid.Nil)
	s.Error(err)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_Success() {
	profileID := uuid.New()
	token, _, err := s.service.GenerateSessionToken(profileID)
	s.Require().NoError(err)

	claims, err := s.service.ValidateSessionToken(token)
	s.Require().NoError(err)
	s.Equal(profileID.String(), claims.ProfileID)
	s.Equal(profileID.String(), claims.Subject)
	s.Equal(TokenTypeSession, claims.TokenType)
	s.Equal(s.issuer, claims.Issuer)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_Failures() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	sign := func(key *rsa.PrivateKey, claims models.SessionClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
		s.Require().NoError(err)
		return token
	}
	baseClaims := func() models.SessionClaims {
		now := time.Now()
		id := uuid.New().String()
		return models.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    s.issuer,
				Subject:   id,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			ProfileID: id,
			TokenType: TokenTypeSession,
		}
	}

	tests := []struct {
		name    string
		token   func() string
		wantErr error
	}{
		{
			name:    "empty token",
			token:   func() string { return "" },
			wantErr: ErrEmptyToken,
		},
		{
			name:    "garbage",
			token:   func() string { return "invalid.token.format" },
			wantErr: ErrInvalidToken,
		},
		{
			name: "expired",
			token: func() string {
				claims := baseClaims()
				claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				return sign(s.privateKey, claims)
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong issuer",
			token: func() string {
				claims := baseClaims()
				claims.Issuer = "someone-else"
				return sign(s.privateKey, claims)
			},
			wantErr: ErrInvalidIssuer,
		},
		{
			name: "wrong token type",
			token: func() string {
				claims := baseClaims()
				claims.TokenType = "refresh"
				return sign(s.privateKey, claims)
			},
			wantErr: ErrInvalidTokenType,
		},
		{
			name: "signed with another key",
			token: func() string {
				return sign(otherKey, baseClaims())
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed profile id",
			token: func() string {
				claims := baseClaims()
				claims.ProfileID = "not-a-uuid"
				return sign(s.privateKey, claims)
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			claims, err := s.service.ValidateSessionToken(tt.token())
			s.ErrorIs(err, tt.wantErr)
			s.Nil(claims)
		})
	}
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_ExpiresWithClock() {
	ts := s.service.(*TokenService)
	profileID := uuid.New()

	token, expiresAt, err := ts.GenerateSessionToken(profileID)
	s.Require().NoError(err)

	claims, err := ts.ValidateSessionToken(token)
	s.Require().NoError(err)
	s.Equal(profileID.String(), claims.Subject)

	ts.now = func() time.Time { return expiresAt.Add(time.Minute) }
	_, err = ts.ValidateSessionToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_RejectsHMAC() {
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ProfileID: uuid.New().String(),
		TokenType: TokenTypeSession,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase bearer", header: "bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "bearer without token", header: "Bearer   ", wantErr: true},
		{name: "padded", header: "  Bearer   abc  ", want: "abc"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				return
			}
			s.NoError(err)
			s.Equal(tt.want, token)
		})
	}
}
