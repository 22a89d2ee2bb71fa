// Package validation rejects malformed requests before they reach the scorers.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spigell/careerbuddy/internal/apperr"
	"github.com/spigell/careerbuddy/internal/jobs"
)

// Validator checks request structs against their validate tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the domain tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	RegisterDomainValidators(v)

	return &Validator{validate: v}
}

// RegisterDomainValidators registers the enumeration tags used by profile and listing types.
func RegisterDomainValidators(v *validator.Validate) {
	_ = v.RegisterValidation("experience_level", ValidateExperienceLevel)
	_ = v.RegisterValidation("location_type", ValidateLocationType)
	_ = v.RegisterValidation("employment_type", ValidateEmploymentType)
}

func ValidateExperienceLevel(fl validator.FieldLevel) bool {
	return jobs.ExperienceLevel(fl.Field().String()).Valid()
}

func ValidateLocationType(fl validator.FieldLevel) bool {
	return jobs.LocationType(fl.Field().String()).Valid()
}

func ValidateEmploymentType(fl validator.FieldLevel) bool {
	return jobs.EmploymentType(fl.Field().String()).Valid()
}

// Struct validates s and returns an InputValidation error naming every failed field.
func (v *Validator) Struct(op string, s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperr.New(apperr.InputValidation, op, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describe(fe))
	}

	return apperr.Invalid(op, "%s", strings.Join(messages, "; "))
}

// Listings validates every listing, reporting the first failure with its id.
func (v *Validator) Listings(op string, items []jobs.Listing) error {
	for i := range items {
		if err := v.Struct(op, &items[i]); err != nil {
			return fmt.Errorf("listing %d (%q): %w", i, items[i].ID, err)
		}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx != -1 {
		field = field[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "experience_level", "location_type", "employment_type":
		return fmt.Sprintf("%s: unknown %s %q", field, strings.ReplaceAll(fe.Tag(), "_", " "), fe.Value())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s must satisfy %s", field, fe.Tag())
	}
}
