package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"employee-portal/models"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("salary", validateSalary)
}

// validateSalary accepts a non-negative decimal number written as text.
func validateSalary(fl validator.FieldLevel) bool {
	value, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil && value >= 0
}

func ValidateStruct(s interface{}) []*models.FieldError {
	var errors []*models.FieldError
	err := Validate.Struct(s)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return []*models.FieldError{{Msg: err.Error()}}
		}

		for _, err := range validationErrors {
			var element models.FieldError
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must be at least %s characters.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must be at most %s characters.", element.Field, err.Param())
			case "email":
				element.Msg = "Invalid email format."
			case "salary":
				element.Msg = "Salary must be a non-negative number."
			case "oneof":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation on tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}

// FirstMessage returns the message of the first validation error, suitable
// for a one-line flash.
func FirstMessage(errors []*models.FieldError) string {
	if len(errors) == 0 {
		return ""
	}
	return errors[0].Msg
}
