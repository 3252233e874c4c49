package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argpars/argpars"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	parser := argpars.NewFromArgs([]string{"prog"},
		argpars.WithName("prog"),
		argpars.WithDescription("a test program"),
		argpars.WithVersion("v1.0"),
	)
	parser.AddArgument("--print-stuff", "display stuff")
	parser.AddArgument("--print-param", "display the parameter")

	command, err := Generate(parser)
	require.NoError(t, err)
	require.NotNil(t, command)

	assert.Equal(t, "prog", command.Use)
	assert.Equal(t, "a test program", command.Short)
	assert.Equal(t, "v1.0", command.Version)

	flag := command.Flags().Lookup("print-stuff")
	require.NotNil(t, flag)
	assert.Equal(t, "display stuff", flag.Usage)
	assert.Equal(t, "bool", flag.Value.Type())

	require.NotNil(t, command.Flags().Lookup("print-param"))
}

func TestGenerateNilParser(t *testing.T) {
	t.Parallel()

	command, err := Generate(nil)
	require.Nil(t, command)
	require.ErrorIs(t, err, argpars.ErrNilParser)
}

func TestBind(t *testing.T) {
	t.Parallel()

	parser := argpars.NewFromArgs([]string{"prog"})
	parser.AddArgument("--check", "a boolean checker")

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, Bind(flagSet, parser))

	flag := flagSet.Lookup("check")
	require.NotNil(t, flag)
	assert.Equal(t, "a boolean checker", flag.Usage)
}

func TestBindValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		flagName string
		expErr   bool
	}{
		{name: "long flag", flagName: "--print-stuff"},
		{name: "short flag", flagName: "-p"},
		{name: "missing marker", flagName: "print-stuff", expErr: true},
		{name: "empty name", flagName: "", expErr: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			parser := argpars.NewFromArgs([]string{"prog"})
			parser.AddArgument(test.flagName, "test argument")

			flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
			err := Bind(flagSet, parser, WithValidation())

			if test.expErr {
				require.ErrorIs(t, err, argpars.ErrInvalidName)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestFlagName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "print-stuff", flagName("--print-stuff"))
	assert.Equal(t, "p", flagName("-p"))
	assert.Equal(t, "plain", flagName("plain"))
}
