package service

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/idna"

	"github.com/michellealmonte/marketing-api/internal/dto"
	"github.com/michellealmonte/marketing-api/internal/entity"
	"github.com/michellealmonte/marketing-api/internal/repository"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
	idnaProfile  = idna.Lookup
)

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	phoneMinLen   = 10
	phoneMaxLen   = 20
	messageMaxLen = 1000
)

// ValidationError reports the first violated field of a payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidateContact checks a contact payload and returns the normalized store
// input. Validation short-circuits on the first violated field.
func ValidateContact(req dto.ContactRequest) (repository.NewContact, error) {
	var out repository.NewContact

	name := strings.TrimSpace(req.Name)
	if len(name) < nameMinLen || len(name) > nameMaxLen {
		return out, invalid("name", fmt.Sprintf("must be between %d and %d characters", nameMinLen, nameMaxLen))
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return out, err
	}

	var phone *string
	if trimmed := strings.TrimSpace(req.Phone); trimmed != "" {
		if !phonePattern.MatchString(trimmed) {
			return out, invalid("phone", "may only contain digits, spaces, parentheses, + and -")
		}
		if len(trimmed) < phoneMinLen || len(trimmed) > phoneMaxLen {
			return out, invalid("phone", fmt.Sprintf("must be between %d and %d characters", phoneMinLen, phoneMaxLen))
		}
		phone = &trimmed
	}

	if !contains(entity.ServiceInterests, req.ServiceInterest) {
		return out, invalid("service_interest", "must be one of the offered services")
	}
	if !contains(entity.ConsultationTypes, req.ConsultationType) {
		return out, invalid("consultation_type", "must be virtual or in_person")
	}
	if !contains(entity.BudgetRanges, req.BudgetRange) {
		return out, invalid("budget_range", "must be one of the listed budget brackets")
	}

	var message *string
	if trimmed := strings.TrimSpace(req.Message); trimmed != "" {
		if len(trimmed) > messageMaxLen {
			return out, invalid("message", fmt.Sprintf("must not exceed %d characters", messageMaxLen))
		}
		message = &trimmed
	}

	out = repository.NewContact{
		Name:             name,
		Email:            email,
		Phone:            phone,
		ServiceInterest:  req.ServiceInterest,
		ConsultationType: req.ConsultationType,
		BudgetRange:      req.BudgetRange,
		Message:          message,
	}
	return out, nil
}

// ValidateNewsletterEmail checks and normalizes a subscription address.
func ValidateNewsletterEmail(raw string) (string, error) {
	return normalizeEmail(raw)
}

// ValidateContactStatus enforces the status enum on behalf of the store,
// which deliberately accepts any value.
func ValidateContactStatus(status string) error {
	if !contains(entity.ContactStatuses, status) {
		return invalid("status", "must be one of new, contacted, converted, closed")
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", invalid("email", "is required")
	}
	if !emailPattern.MatchString(email) {
		return "", invalid("email", "must be a valid email address")
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !isDomainValid(domain) {
		return "", invalid("email", "must use a valid domain")
	}
	if ascii, err := idnaProfile.ToASCII(domain); err != nil || ascii == "" {
		return "", invalid("email", "must use a valid domain")
	}
	return email, nil
}

func contains(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
