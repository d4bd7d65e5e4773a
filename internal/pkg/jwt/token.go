package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Audiences separate the two trust domains inside the claims as well as by secret
const (
	AudiencePatient = "patient"
	AudienceStaff   = "staff"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidRole  = errors.New("token role not accepted")
)

// TokenPair is an access token plus the refresh token that can renew it
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshClaims carry only the subject id
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// signer holds the secret material and lifetimes of one domain
type signer struct {
	issuer        string
	audience      string
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func (s *signer) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *signer) sign(claims jwt.Claims, secret []byte) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *signer) signRefresh(subject string) (string, error) {
	return s.sign(&RefreshClaims{RegisteredClaims: s.registered(subject, s.refreshTTL)}, s.refreshSecret)
}

// parse verifies signature, algorithm, expiry, issuer and audience
func (s *signer) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return ErrTokenExpired
		}
		return ErrInvalidToken
	}
	if !token.Valid {
		return ErrInvalidToken
	}

	rc, ok := registeredOf(claims)
	if !ok || !rc.VerifyIssuer(s.issuer, true) || !rc.VerifyAudience(s.audience, true) || rc.Subject == "" {
		return ErrInvalidToken
	}
	return nil
}

func (s *signer) parseRefresh(tokenString string) (string, error) {
	claims := &RefreshClaims{}
	if err := s.parse(tokenString, claims, s.refreshSecret); err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func registeredOf(claims jwt.Claims) (*jwt.RegisteredClaims, bool) {
	switch c := claims.(type) {
	case *PatientClaims:
		return &c.RegisteredClaims, true
	case *StaffClaims:
		return &c.RegisteredClaims, true
	case *RefreshClaims:
		return &c.RegisteredClaims, true
	}
	return nil, false
}
