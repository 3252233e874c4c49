package argpars

import (
	"fmt"

	"github.com/argpars/argpars/internal/errors"
)

// The library classifies instead of raising: the only error condition it
// recognizes is an unrecognized token, reported through the
// WrongArgumentsPassed query and the Pars exit code. The sentinels below
// are returned by the gen subpackages, which are the only error-returning
// surfaces.
var (
	// ErrNilParser indicates that a nil *Parser was handed to a generator.
	ErrNilParser = errors.ErrNilParser

	// ErrNilCommand indicates that a nil cobra command was handed to the
	// completion generator.
	ErrNilCommand = errors.ErrNilCommand

	// ErrInvalidName indicates a registered flag name that failed
	// validation while bridging to a cobra command.
	ErrInvalidName = errors.ErrInvalidName
)

// writeUnknownArgument prints the unknown-option message and a help hint
// to the configured error writer.
func (p *Parser) writeUnknownArgument(token string) {
	if p.opts.errOut == nil {
		return
	}

	fmt.Fprintf(p.opts.errOut, "ERROR: No such option: '%s'\n", token)

	var prog string
	if len(p.args) > 0 {
		prog = p.args[0]
	}

	fmt.Fprintf(p.opts.errOut, "Try: '%s --help' for more information.\n", prog)
}
