package jwt

import (
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// StaffClaims are the access token claims of the staff domain.
// The subject is the staff user id.
type StaffClaims struct {
	Email    string           `json:"email"`
	Role     models.StaffRole `json:"role"`
	ClinicID string           `json:"clinic_id"`
	BranchID *string          `json:"branch_id,omitempty"`
	jwt.RegisteredClaims
}

// StaffTokenService issues and verifies staff tokens. It never sees patient secrets.
type StaffTokenService struct {
	signer
}

// NewStaffTokenService creates the staff domain token service
func NewStaffTokenService(issuer string, cfg models.TokenDomainConfig) *StaffTokenService {
	return &StaffTokenService{signer{
		issuer:        issuer,
		audience:      AudienceStaff,
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}}
}

// IssuePair signs an access and a refresh token for u
func (s *StaffTokenService) IssuePair(u *models.StaffUser) (TokenPair, error) {
	access, err := s.IssueAccess(u)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.signRefresh(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess signs a new access token for u
func (s *StaffTokenService) IssueAccess(u *models.StaffUser) (string, error) {
	return s.sign(&StaffClaims{
		Email:            u.Email,
		Role:             u.Role,
		ClinicID:         u.ClinicID,
		BranchID:         u.BranchID,
		RegisteredClaims: s.registered(u.ID, s.accessTTL),
	}, s.accessSecret)
}

// ParseAccess verifies an access token and requires a staff role
func (s *StaffTokenService) ParseAccess(token string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	if err := s.parse(token, claims, s.accessSecret); err != nil {
		return nil, err
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidRole
	}
	return claims, nil
}

// ParseRefresh verifies a refresh token and returns the staff user id it carries
func (s *StaffTokenService) ParseRefresh(token string) (string, error) {
	return s.parseRefresh(token)
}
