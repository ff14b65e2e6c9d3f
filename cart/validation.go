package cart

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists the form fields, by their json names, that failed a submit.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the validate tags of a form struct and reports failures as a
// *ValidationError. Forms are expected to be trimmed by the caller.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// CheckoutForm is the delivery form submitted with an order. Comment is the only optional field.
type CheckoutForm struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required"`
	City    string `json:"city" validate:"required"`
	Address string `json:"address" validate:"required"`
	Comment string `json:"comment"`
}

// Trimmed returns the form with surrounding whitespace removed from every field.
func (f CheckoutForm) Trimmed() CheckoutForm {
	return CheckoutForm{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Email:   strings.TrimSpace(f.Email),
		City:    strings.TrimSpace(f.City),
		Address: strings.TrimSpace(f.Address),
		Comment: strings.TrimSpace(f.Comment),
	}
}

// Validate trims f and checks its required fields.
func (f CheckoutForm) Validate() (CheckoutForm, error) {
	t := f.Trimmed()
	if err := Validate(t); err != nil {
		return f, err
	}
	return t, nil
}
