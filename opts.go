package argpars

import (
	"io"
	"os"
)

// Reserved flags, recognized without explicit registration unless
// WithoutDefaultArguments is used. Matching is exact and case-sensitive,
// with no short forms.
const (
	HelpFlag    = "--help"
	VersionFlag = "--version"
)

// Option sets values in the parser configuration.
type Option func(o *opts)

type opts struct {
	usage       string
	name        string
	description string
	version     string

	defaultArgs   bool
	trailingParam bool

	out    io.Writer
	errOut io.Writer
}

func (o opts) apply(options ...Option) opts {
	for _, option := range options {
		option(&o)
	}

	return o
}

func defOpts() opts {
	return opts{
		defaultArgs: true,
		out:         os.Stdout,
		errOut:      os.Stderr,
	}
}

// WithUsage sets the usage banner printed first on the help screen. The
// text is used verbatim, including any embedded program name.
func WithUsage(usage string) Option { return func(o *opts) { o.usage = usage } }

// WithName sets the program display name shown on the help and version screens.
func WithName(name string) Option { return func(o *opts) { o.name = name } }

// WithDescription sets the one-line description shown on the help screen.
func WithDescription(description string) Option {
	return func(o *opts) { o.description = description }
}

// WithVersion sets the version string shown on the help and version screens.
func WithVersion(version string) Option { return func(o *opts) { o.version = version } }

// WithoutDefaultArguments removes the reserved --help and --version flags
// from the recognized set, from the help screen, and from Pars handling.
func WithoutDefaultArguments() Option { return func(o *opts) { o.defaultArgs = false } }

// WithTrailingParameter exempts the final token of the argument vector
// from the unknown-argument scan, allowing a free-form trailing value.
func WithTrailingParameter() Option { return func(o *opts) { o.trailingParam = true } }

// WithOutput sets the writer for the help and version screens.
// Standard output by default.
func WithOutput(out io.Writer) Option { return func(o *opts) { o.out = out } }

// WithErrorOutput sets the writer for the unknown-argument message.
// Standard error by default.
func WithErrorOutput(errOut io.Writer) Option { return func(o *opts) { o.errOut = errOut } }
