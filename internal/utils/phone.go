package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalidPhone is returned when a number cannot be normalized
var ErrInvalidPhone = errors.New("invalid phone number")

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "\t", "")
	phoneDigits     = regexp.MustCompile(`^\+?\d{6,17}$`)
)

// PhoneNormalizer turns user-entered phone numbers into E.164. Numbers without
// a country code are read in the default region.
type PhoneNormalizer struct {
	region string
}

// NewPhoneNormalizer creates a normalizer for the given ISO 3166 region, e.g. "EG"
func NewPhoneNormalizer(defaultRegion string) *PhoneNormalizer {
	if defaultRegion == "" {
		defaultRegion = "EG"
	}
	return &PhoneNormalizer{region: strings.ToUpper(defaultRegion)}
}

// Normalize returns phone in E.164 form ("+201555555555"). Spaces and dashes
// are ignored; anything else non-numeric is rejected.
func (n *PhoneNormalizer) Normalize(phone string) (string, error) {
	num, err := n.parse(phone)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// IsValid reports whether phone can be normalized
func (n *PhoneNormalizer) IsValid(phone string) bool {
	_, err := n.parse(phone)
	return err == nil
}

// FormatForDisplay renders phone in international notation ("+20 15 55555555")
func (n *PhoneNormalizer) FormatForDisplay(phone string) (string, error) {
	num, err := n.parse(phone)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), nil
}

// RegionOf returns the ISO region a number belongs to
func (n *PhoneNormalizer) RegionOf(phone string) (string, error) {
	num, err := n.parse(phone)
	if err != nil {
		return "", err
	}
	return phonenumbers.GetRegionCodeForNumber(num), nil
}

func (n *PhoneNormalizer) parse(phone string) (*phonenumbers.PhoneNumber, error) {
	cleaned := phoneSeparators.Replace(strings.TrimSpace(phone))
	if !phoneDigits.MatchString(cleaned) {
		return nil, ErrInvalidPhone
	}

	num, err := phonenumbers.Parse(cleaned, n.region)
	if err != nil {
		return nil, ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, ErrInvalidPhone
	}
	return num, nil
}
