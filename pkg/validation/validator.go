package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"krishi/entities"
)

// Validator plugs go-playground/validator into echo's c.Validate. Every enum
// field of entities.Choices is registered as a tag of the same name, so
// `validate:"crop"` accepts only declared crops.
type Validator struct {
	v *validator.Validate
}

// New fails when a tag cannot be registered, so a broken validator stops
// startup instead of panicking on the first request.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	for field := range entities.Choices {
		if err := registerChoice(v, field); err != nil {
			return nil, err
		}
	}
	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return isISODate(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register isodate: %w", err)
	}
	return &Validator{v: v}, nil
}

func registerChoice(v *validator.Validate, field string) error {
	err := v.RegisterValidation(field, func(fl validator.FieldLevel) bool {
		return entities.ValidChoice(field, fl.Field().String())
	})
	if err != nil {
		return fmt.Errorf("register %q choices: %w", field, err)
	}
	return nil
}

func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// FieldErrors flattens a validation error to json field -> message.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "enter a valid email address"
	case "isodate":
		return "enter a date as YYYY-MM-DD"
	}
	if _, ok := entities.Choices[fe.Tag()]; ok {
		return fmt.Sprintf("select a valid choice; %v is not one of the available choices", fe.Value())
	}
	return "invalid value"
}

// Error answers a failed c.Validate the same way for every handler.
func Error(c echo.Context, err error) error {
	if fields := FieldErrors(err); fields != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "please correct the errors in the form", "fields": fields})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func isISODate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
