package cmd

import (
	"github.com/go-playground/validator/v10"
)

// nameConstraint is the validation applied to registered flag names when
// a validator is set: present, and carrying the dash flag marker.
const nameConstraint = "required,startswith=-"

// OptFunc sets values in the generator options.
type OptFunc func(o *opts)

type opts struct {
	validator *validator.Validate
}

func defOpts() opts {
	return opts{}
}

func (o opts) apply(optFuncs ...OptFunc) opts {
	for _, optFunc := range optFuncs {
		optFunc(&o)
	}

	return o
}

// WithValidation validates registered flag names with a default
// go-playground/validator instance before bridging. The core library
// never validates names; this is the place where callers can enforce
// the flag-marker convention.
func WithValidation() OptFunc {
	return func(o *opts) { o.validator = validator.New() }
}

// WithValidator validates registered flag names with a caller-supplied
// validator, allowing custom constraint registration through the
// *validator.Validate type.
func WithValidator(v *validator.Validate) OptFunc {
	return func(o *opts) { o.validator = v }
}
