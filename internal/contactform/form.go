package contactform

import (
	"errors"
	"fmt"

	"github.com/angelmondragon/easydial-core/internal/localization"
	"github.com/go-playground/validator/v10"
)

// Input carries the raw form fields as the user typed them.
type Input struct {
	Name        string `validate:"required"`
	PhoneNumber string `validate:"omitempty,number"`
}

// State is the recomputed validation result for one input. It is a plain
// value: invalid input is a state, never an error.
type State struct {
	NameValid    bool
	PhoneValid   bool
	PhoneMessage string
	CanSave      bool
}

var validate = validator.New()

// Evaluate checks the input against the active region's expected local
// number length. The digits rule wins over the length rule, so a phone
// with letters reports the digits message even when the length is wrong
// too.
func Evaluate(input Input, expectedDigits int, table *localization.Table) State {
	state := State{NameValid: true}

	digitsValid := true
	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fieldErr := range fieldErrs {
				switch fieldErr.Field() {
				case "Name":
					state.NameValid = false
				case "PhoneNumber":
					digitsValid = false
				}
			}
		}
	}

	switch {
	case !digitsValid:
		state.PhoneMessage = table.Lookup(localization.KeyInvalidPhoneDigits)
	case validate.Var(input.PhoneNumber, fmt.Sprintf("required,len=%d", expectedDigits)) != nil:
		state.PhoneMessage = table.Lookup(localization.KeyInvalidPhoneLength)
	default:
		state.PhoneValid = true
	}

	state.CanSave = state.NameValid && state.PhoneValid
	return state
}
