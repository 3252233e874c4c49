package argpars

import (
	"github.com/argpars/argpars/internal/registry"
	"github.com/argpars/argpars/internal/scan"
)

// Exit codes returned by Pars. The mapping is binary: there are no
// graded failure codes.
const (
	exitSuccess = 0
	exitFailure = 1
)

// Argument is a registered flag entry: the exact token used on the
// command line, and the description shown on the help screen.
type Argument struct {
	Name        string
	Description string
}

// Parser holds the argument vector captured at construction, the
// registry of known flags, and the help metadata. Registration must
// complete before any query is issued; queries are read-only and may be
// called any number of times. The Parser is not safe for concurrent
// mutation.
type Parser struct {
	args     []string
	registry *registry.Registry
	sections []section
	opts     opts
}

// AddArgument registers a flag under its exact name. Names are matched
// case-sensitively with no prefix or abbreviation matching, so callers
// should include the flag marker ("--print-stuff", not "print-stuff").
// Registering a name twice overwrites its description but keeps its
// original position in the help ordering.
func (p *Parser) AddArgument(name, description string) {
	p.registry.Add(name, description)
}

// Arguments returns the registered entries in first-insertion order,
// without the reserved flags.
func (p *Parser) Arguments() []Argument {
	specs := p.registry.Specs()

	arguments := make([]Argument, 0, len(specs))
	for _, spec := range specs {
		arguments = append(arguments, Argument{Name: spec.Name, Description: spec.Description})
	}

	return arguments
}

// Args returns a copy of the argument vector captured at construction.
func (p *Parser) Args() []string {
	return append([]string(nil), p.args...)
}

// Name returns the configured program display name.
func (p *Parser) Name() string { return p.opts.name }

// Description returns the configured one-line description.
func (p *Parser) Description() string { return p.opts.description }

// Version returns the configured version string.
func (p *Parser) Version() string { return p.opts.version }

// Usage returns the configured usage banner.
func (p *Parser) Usage() string { return p.opts.usage }

// NoArgumentsPassed reports whether only the program-name slot is
// present in the captured vector.
func (p *Parser) NoArgumentsPassed() bool {
	return len(p.args) <= 1
}

// Passed reports whether name occurs anywhere after the program name,
// by exact match. The name does not have to be registered.
func (p *Parser) Passed(name string) bool {
	if len(p.args) <= 1 {
		return false
	}

	return scan.Contains(p.args[1:], name)
}

// DefaultArgumentsPassed reports whether the reserved --help or
// --version flag was passed. It is always false after
// WithoutDefaultArguments.
func (p *Parser) DefaultArgumentsPassed() bool {
	if !p.opts.defaultArgs {
		return false
	}

	return p.Passed(HelpFlag) || p.Passed(VersionFlag)
}

// WrongArgumentsPassed reports whether the vector carries a token that
// is neither a recognized flag nor a parameter to one: a dash-prefixed
// token offends when it is not recognized, and any other token offends
// when the token before it is not recognized. With WithTrailingParameter
// the final token is exempt.
func (p *Parser) WrongArgumentsPassed() bool {
	_, found := scan.Unknown(p.args, p.recognized, p.opts.trailingParam)

	return found
}

// ParameterFor returns the token immediately following the first
// occurrence of name, provided that token exists and is not itself a
// recognized flag. It returns "" otherwise.
func (p *Parser) ParameterFor(name string) string {
	return scan.Parameter(p.args, p.recognized, name)
}

// Pars computes the process exit code for the captured vector: 1 after
// writing the unknown-argument message when an unrecognized token was
// passed, 0 otherwise. When the reserved flags are enabled, --help
// renders the help screen and --version the version screen before
// returning. Pars performs no parsing beyond what the queries already
// compute; the caller decides whether to os.Exit with the result.
func (p *Parser) Pars() int {
	if p.NoArgumentsPassed() {
		return exitSuccess
	}

	if token, found := scan.Unknown(p.args, p.recognized, p.opts.trailingParam); found {
		p.writeUnknownArgument(token)

		return exitFailure
	}

	if p.opts.defaultArgs {
		if p.Passed(HelpFlag) {
			p.DisplayHelpScreen()
		}

		if p.Passed(VersionFlag) {
			p.DisplayVersionScreen()
		}
	}

	return exitSuccess
}

// recognized reports whether token is a registered or reserved flag name.
func (p *Parser) recognized(token string) bool {
	if p.registry.Has(token) {
		return true
	}

	return p.opts.defaultArgs && (token == HelpFlag || token == VersionFlag)
}
