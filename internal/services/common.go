package services

import (
	"errors"
	"strings"
	"time"

	ierr "glass_office/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Clock supplies the current time; nil means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

var validate = validator.New()

// validateInput runs struct-tag validation and reports failures as a ValidationError
// carrying hint.
func validateInput(v any, hint string) error {
	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return ierr.WithError(err).
				WithMessagef("field %s failed %s", fieldErrs[0].Namespace(), fieldErrs[0].Tag()).
				WithHint(hint).
				Mark(ierr.ErrValidation)
		}
		return ierr.WithError(err).WithHint(hint).Mark(ierr.ErrValidation)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
