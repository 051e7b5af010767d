package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/places-microservice/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("lonlat", validateLonLat)
}

// Validate - валидация структуры. Ошибки полей превращаются в ErrInvalidRequest
// с именами полей в details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]interface{}, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		return errors.ErrInvalidRequest.WithDetails(details)
	}
	return err
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// validateLonLat проверяет пару координат [longitude, latitude]
func validateLonLat(fl validator.FieldLevel) bool {
	coords, ok := fl.Field().Interface().([2]float64)
	if !ok {
		return false
	}

	lon, lat := coords[0], coords[1]
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}
