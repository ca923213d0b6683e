package validator

import (
	"ctchen222/tictactoe/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// cell accepts the integer encoding of a board cell: 0 empty, 1 human, 2 computer.
	if err := validate.RegisterValidation("cell", func(fl validator.FieldLevel) bool {
		v := fl.Field().Int()
		return v >= int64(game.Empty) && v <= int64(game.Computer)
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}
