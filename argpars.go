// Package argpars is a minimal command-line argument parser. It registers
// named presence flags with descriptions, captures the process argument
// vector once at construction, and classifies the captured tokens against
// the registered set plus the reserved --help and --version flags.
//
// The parser has no grammar beyond flag presence: queries report whether
// no arguments were passed, whether a given flag was passed, whether only
// the reserved flags were passed, and whether an unrecognized token was
// passed. A token following a recognized flag is treated as that flag's
// parameter and can be retrieved with ParameterFor. Help and version
// screens are rendered from the registered set, and Pars computes the
// process exit code.
//
// For bridging a Parser into a *cobra.Command with carapace shell
// completions, see the subpackages under "github.com/argpars/argpars/gen".
package argpars

import (
	"os"

	"github.com/argpars/argpars/internal/registry"
)

// New returns a Parser capturing os.Args as its argument vector.
//
// All configuration is supplied through options at construction. The
// Parser is not safe for concurrent mutation: complete all AddArgument
// and AddHelpSection calls before issuing queries, and never call them
// from more than one goroutine.
func New(options ...Option) *Parser {
	return NewFromArgs(os.Args, options...)
}

// NewFromArgs returns a Parser over an explicit argument vector, index 0
// conventionally holding the program name. The vector is copied once at
// construction and never re-captured or mutated, so all queries are
// consistent within one run.
func NewFromArgs(argv []string, options ...Option) *Parser {
	return &Parser{
		args:     append([]string(nil), argv...),
		registry: registry.New(),
		opts:     defOpts().apply(options...),
	}
}
