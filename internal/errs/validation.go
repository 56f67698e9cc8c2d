package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromValidation converts a validator error into an EINVALID error listing the failing fields.
func FromValidation(prefix string, err error) *Error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return Invalid("%s: %s", prefix, err)
	}
	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return Invalid("%s: %s", prefix, strings.Join(fields, ", "))
}
