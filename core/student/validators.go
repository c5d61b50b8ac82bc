package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

var (
	bloodGroupTag  = "bloodgroup"
	bloodGroupText = "invalid blood group"
	bloodGroups    = map[string]bool{
		"A+": true, "A-": true, "B+": true, "B-": true,
		"AB+": true, "AB-": true, "O+": true, "O-": true,
	}
)

func InitValidators(validate *validator.Validate, translator ut.Translator) error {
	if err := validate.RegisterValidation(bloodGroupTag, bloodGroupValidation); err != nil {
		return errors.Wrap(err, "registering bloodgroup")
	}
	return core.RegisterCustomTranslation(validate, translator, bloodGroupTag, bloodGroupText)
}

// Custom Validators

func bloodGroupValidation(fl validator.FieldLevel) bool {
	return bloodGroups[fl.Field().String()]
}
