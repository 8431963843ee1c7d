package playstore

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateQuery checks a query before anything is sent, every error it returns
// wraps ErrInvalidInput.
func validateQuery(query ReviewQuery) error {
	err := validate.Struct(query)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	first := fieldErrors[0]
	switch first.StructNamespace() {
	case "ReviewQuery.AppId":
		return fmt.Errorf("%w: appId missing", ErrInvalidInput)
	case "ReviewQuery.Page":
		return fmt.Errorf("%w: page cannot be lower than 0", ErrInvalidInput)
	case "ReviewQuery.Sort":
		return fmt.Errorf("%w: invalid sort %d", ErrInvalidInput, first.Value())
	}
	return fmt.Errorf(
		"%w: %s failed on '%s'",
		ErrInvalidInput,
		first.Namespace(),
		first.Tag(),
	)
}
