package validator

import (
	"github.com/go-playground/validator/v10"

	"boxoffice/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("category", validateCategory)

	return validator
}

func validateCategory(fl validator.FieldLevel) bool {
	category, ok := fl.Field().Interface().(domain.Category)
	if !ok {
		return false
	}

	return category.Valid()
}
