package service

import (
	"regexp"
	"strings"

	"github.com/tazhate/familytools/internal/domain"
)

// InternationalCode prefixes every normalized phone number.
const InternationalCode = "+380"

var (
	nonDigitPattern = regexp.MustCompile(`\D`)
	// optional country code with or without "+", then an optional trunk zero
	localPrefixPattern = regexp.MustCompile(`^(\+?38)?0?`)
)

type PhoneService struct{}

func NewPhoneService() *PhoneService {
	return &PhoneService{}
}

// Normalize converts a free-form number to the +380XXXXXXXXX form.
//
// Only digits survive, plus a "+" when it is the first character after
// trimming. The number of trailing digits is not checked, so malformed input
// yields a malformed (but still +380-prefixed) result.
func (s *PhoneService) Normalize(phone string) string {
	trimmed := strings.TrimSpace(phone)

	cleaned := nonDigitPattern.ReplaceAllLiteralString(trimmed, "")
	if strings.HasPrefix(trimmed, "+") {
		cleaned = "+" + cleaned
	}

	if strings.HasPrefix(cleaned, InternationalCode) {
		return cleaned
	}
	return localPrefixPattern.ReplaceAllLiteralString(cleaned, InternationalCode)
}

// NormalizeAny is Normalize for values of unknown type.
func (s *PhoneService) NormalizeAny(v any) (string, error) {
	phone, ok := v.(string)
	if !ok {
		return "", domain.NewError("normalize phone", domain.ErrType, errExpected("a phone number string", v))
	}
	return s.Normalize(phone), nil
}

// NormalizeAll normalizes every number, keeping order.
func (s *PhoneService) NormalizeAll(phones []string) []string {
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = s.Normalize(p)
	}
	return out
}
