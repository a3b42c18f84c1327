// Package validation validates seed records and user selections with go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/slovar-dev/slovar/internal/domain"
	domainerrors "github.com/slovar-dev/slovar/internal/errors"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the dictionary's custom tags registered:
//
//	genre         value is one of domain.Genres
//	genre_filter  value is a genre or the all-genres sentinel
//	letter        value is a single letter rune
//	letter_filter value is a single letter or the all-letters sentinel
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return domain.Genre(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("genre_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return domain.IsAllGenres(s) || domain.Genre(s).Valid()
	})
	_ = v.RegisterValidation("letter", func(fl validator.FieldLevel) bool {
		return domain.IsSingleLetter(fl.Field().String())
	})
	_ = v.RegisterValidation("letter_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return domain.IsAllLetters(s) || domain.IsSingleLetter(s)
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns a domain validation error.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// Var validates a single value against a tag, reporting it under field.
func (v *Validator) Var(field string, value any, tag string) error {
	err := v.v.Var(value, tag)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}
	return domainerrors.ValidationWithDetails(
		fmt.Sprintf("invalid %s", field),
		map[string]string{field: v.friendlyMessage(validationErrs[0])},
	)
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrors[e.Field()] = v.friendlyMessage(e)
	}

	return domainerrors.ValidationWithDetails("validation failed", fieldErrors)
}

func (v *Validator) friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + e.Param()
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "genre":
		return "must be one of: " + strings.Join(genreNames(), ", ")
	case "genre_filter":
		return "must be " + domain.AllGenres + " or one of: " + strings.Join(genreNames(), ", ")
	case "letter":
		return "must be a single letter"
	case "letter_filter":
		return "must be " + domain.AllLetters + " or a single letter"
	default:
		return "is invalid"
	}
}

func genreNames() []string {
	names := make([]string, len(domain.Genres))
	for i, g := range domain.Genres {
		names[i] = string(g)
	}
	return names
}
