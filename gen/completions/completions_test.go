package completions

import (
	"testing"

	"github.com/rsteube/carapace"
	"github.com/stretchr/testify/require"

	"github.com/argpars/argpars"
	gen "github.com/argpars/argpars/gen/cmd"
)

// TestCompletions just calls the carapace engine test routine on a
// command bridged from a small parser.
func TestCompletions(t *testing.T) {
	t.Parallel()

	parser := argpars.NewFromArgs([]string{"prog"},
		argpars.WithName("prog"),
		argpars.WithTrailingParameter(),
	)
	parser.AddArgument("--print-stuff", "display stuff")

	rootCmd, err := gen.Generate(parser)
	require.NoError(t, err)

	// Generate the completions without inspecting the resulting carapace
	// object: the carapace library takes care of verifying its output.
	comps, err := Generate(rootCmd, parser, nil)
	require.NoError(t, err)
	require.NotNil(t, comps)

	carapace.Test(t)
}

func TestGenerateNilArguments(t *testing.T) {
	t.Parallel()

	parser := argpars.NewFromArgs([]string{"prog"})

	rootCmd, err := gen.Generate(parser)
	require.NoError(t, err)

	_, err = Generate(nil, parser, nil)
	require.Error(t, err)

	_, err = Generate(rootCmd, nil, nil)
	require.ErrorIs(t, err, argpars.ErrNilParser)
}

func TestGenerateCustomTrailingAction(t *testing.T) {
	t.Parallel()

	parser := argpars.NewFromArgs([]string{"prog"}, argpars.WithTrailingParameter())
	parser.AddArgument("--loud", "print in uppercase")

	rootCmd, err := gen.Generate(parser)
	require.NoError(t, err)

	comps, err := Generate(rootCmd, parser, nil,
		WithTrailingAction(carapace.ActionValues("localhost", "example.org")))
	require.NoError(t, err)
	require.NotNil(t, comps)
}
