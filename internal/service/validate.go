package service

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return validatorInstance().Var(email, "required,email,max=254") == nil
}

// normalizeCurrency upper-cases code and reports whether it is three letters.
func normalizeCurrency(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return code, currencyCode.MatchString(code)
}

// checkText validates a trimmed free-text field by rune count.
func checkText(errs fieldErrors, field, value string, minLen, maxLen int) string {
	value = strings.TrimSpace(value)
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0 && minLen > 0:
		errs.add(field, "is required")
	case n < minLen:
		errs.add(field, fmt.Sprintf("must be at least %d characters", minLen))
	case n > maxLen:
		errs.add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return value
}
