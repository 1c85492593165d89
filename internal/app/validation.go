package app

import (
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"review_analyzer/internal/domain"
	"review_analyzer/internal/shared"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("allowed_location", func(fl validator.FieldLevel) bool {
			return shared.IsAllowedLocation(fl.Field().String())
		})
		_ = validate.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
			return utf8.ValidString(fl.Field().String())
		})
	})
	return validate
}

var fieldMessages = map[string]string{
	"ReviewBody.required":       "ReviewBody is required",
	"ReviewBody.utf8":           "ReviewBody must be valid UTF-8 text",
	"Location.required":         "Location is required",
	"Location.allowed_location": "Location must be one of the allowed locations",
}

// validateStruct returns the first failing field as a *domain.ValidationError.
// Fields are checked in declaration order.
func validateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.ValidationError{Field: "unknown", Msg: err.Error()}
	}
	fe := verrs[0]
	msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
	if !ok {
		msg = fe.Field() + " is invalid"
	}
	return &domain.ValidationError{Field: fe.Field(), Msg: msg}
}
