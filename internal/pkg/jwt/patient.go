package jwt

import (
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// PatientClaims are the access token claims of the patient domain.
// The subject is the patient id.
type PatientClaims struct {
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	ClinicID string `json:"clinic_id"`
	jwt.RegisteredClaims
}

// PatientTokenService issues and verifies patient tokens. It never sees staff secrets.
type PatientTokenService struct {
	signer
}

// NewPatientTokenService creates the patient domain token service
func NewPatientTokenService(issuer string, cfg models.TokenDomainConfig) *PatientTokenService {
	return &PatientTokenService{signer{
		issuer:        issuer,
		audience:      AudiencePatient,
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}}
}

// IssuePair signs an access and a refresh token for p
func (s *PatientTokenService) IssuePair(p *models.Patient) (TokenPair, error) {
	access, err := s.IssueAccess(p)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.signRefresh(p.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess signs a new access token for p
func (s *PatientTokenService) IssueAccess(p *models.Patient) (string, error) {
	return s.sign(&PatientClaims{
		Phone:            p.Phone,
		Role:             models.RolePatient,
		ClinicID:         p.ClinicID,
		RegisteredClaims: s.registered(p.ID, s.accessTTL),
	}, s.accessSecret)
}

// ParseAccess verifies an access token. Any role other than PATIENT is
// rejected even when the signature is valid.
func (s *PatientTokenService) ParseAccess(token string) (*PatientClaims, error) {
	claims := &PatientClaims{}
	if err := s.parse(token, claims, s.accessSecret); err != nil {
		return nil, err
	}
	if claims.Role != models.RolePatient {
		return nil, ErrInvalidRole
	}
	return claims, nil
}

// ParseRefresh verifies a refresh token and returns the patient id it carries
func (s *PatientTokenService) ParseRefresh(token string) (string, error) {
	return s.parseRefresh(token)
}
