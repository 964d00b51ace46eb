package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the wire format of calendar dates.
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format of billing months.
	MonthLayout = "2006-01"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	validateErr  error
)

// RegisterValidations adds the decimal type mapping and the custom rules used by
// request structs to v. The gin binding engine and the service-side validator both need them.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("dgt0", decimalPositive); err != nil {
		return fmt.Errorf("failed to register dgt0 validation: %w", err)
	}
	return nil
}

// decimalPositive accepts decimals (already mapped to their string form) strictly greater than
// zero with no more than domain.MoneyScale decimal places.
func decimalPositive(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(field.String())
	if err != nil {
		return false
	}
	return d.IsPositive() && domain.FitsScale(d, domain.MoneyScale)
}

// Validate checks a request struct against its binding tags and wraps failures in ErrValidation.
// Services call it so that requests built outside of gin get the same checks.
func Validate(req interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName("binding")
		validateErr = RegisterValidations(validate)
	})
	if validateErr != nil {
		return validateErr
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, ", "))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// ParseDate parses a calendar date in DateLayout. An empty value yields today (UTC).
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date '%s', expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}

// ParseMonth parses a billing month in MonthLayout and returns its first day.
func ParseMonth(value string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid month '%s', expected YYYY-MM", apperrors.ErrValidation, value)
	}
	return t, nil
}
