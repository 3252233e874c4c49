// Package completions attaches carapace shell completion to a command
// bridged from an argpars.Parser. Flag-name completion comes from the
// command's pflag set; the free-form trailing parameter position is
// completed by a configurable action, files by default.
package completions

import (
	comp "github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/argpars/argpars"
	"github.com/argpars/argpars/internal/errors"
)

// OptFunc sets values in the completion generator options.
type OptFunc func(o *opts)

type opts struct {
	trailing comp.Action
}

func defOpts() opts {
	return opts{trailing: comp.ActionFiles()}
}

func (o opts) apply(optFuncs ...OptFunc) opts {
	for _, optFunc := range optFuncs {
		optFunc(&o)
	}

	return o
}

// WithTrailingAction sets the completion action for the trailing
// parameter position.
func WithTrailingAction(action comp.Action) OptFunc {
	return func(o *opts) { o.trailing = action }
}

// Generate attaches carapace completion to the bridged command. The comps
// parameter may be passed non-nil to keep working with an existing
// carapace builder; the builder is returned either way, so callers can
// register further completions on it.
func Generate(cmd *cobra.Command, parser *argpars.Parser, comps *comp.Carapace, optFuncs ...OptFunc) (*comp.Carapace, error) {
	if cmd == nil {
		return nil, errors.ErrNilCommand
	}

	if parser == nil {
		return nil, errors.ErrNilParser
	}

	settings := defOpts().apply(optFuncs...)

	if comps == nil {
		comps = comp.Gen(cmd)
	}

	comps.PositionalAnyCompletion(settings.trailing)

	return comps, nil
}
