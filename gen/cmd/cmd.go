// Package cmd bridges an argpars.Parser into a spf13/cobra command,
// registering one boolean pflag per registered argument so the parser's
// flag set can serve as a root command or join an existing command tree.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/argpars/argpars"
	"github.com/argpars/argpars/internal/errors"
)

// Generate returns a cobra command carrying one boolean flag per argument
// registered on the parser. The parser's name, description and version
// map to Use, Short and Version. The command has no run function; the
// caller attaches one and executes it.
func Generate(parser *argpars.Parser, optFuncs ...OptFunc) (*cobra.Command, error) {
	if parser == nil {
		return nil, errors.ErrNilParser
	}

	command := &cobra.Command{
		Use:         parser.Name(),
		Short:       parser.Description(),
		Long:        parser.Usage(),
		Version:     parser.Version(),
		Annotations: map[string]string{},
	}

	if err := Bind(command.Flags(), parser, optFuncs...); err != nil {
		return nil, err
	}

	command.TraverseChildren = true

	return command, nil
}

// Bind registers the parser's arguments as boolean flags on an existing
// pflag set. This is useful for integrating a parser with a command tree
// that is partially managed manually.
func Bind(flags *pflag.FlagSet, parser *argpars.Parser, optFuncs ...OptFunc) error {
	if parser == nil {
		return errors.ErrNilParser
	}

	settings := defOpts().apply(optFuncs...)

	for _, arg := range parser.Arguments() {
		if settings.validator != nil {
			if err := settings.validator.Var(arg.Name, nameConstraint); err != nil {
				return fmt.Errorf("%w: %q: %s", errors.ErrInvalidName, arg.Name, err)
			}
		}

		flags.Bool(flagName(arg.Name), false, arg.Description)
	}

	return nil
}

// flagName strips the dash markers from a registered name, since pflag
// stores flag names bare.
func flagName(name string) string {
	return strings.TrimLeft(name, "-")
}
