package http

import (
	"wedding_service/internal/domain/models"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator validator с тегом slug для идентификаторов свадеб.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return models.ValidSlug(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
