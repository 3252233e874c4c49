package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rsteube/carapace-bin/pkg/actions/net"
	"github.com/spf13/cobra"

	"github.com/argpars/argpars"
	gen "github.com/argpars/argpars/gen/cmd"
	"github.com/argpars/argpars/gen/completions"
)

//
// This file shows the bridged workflow: the same parser, turned into a
// cobra command with carapace shell completions attached.
//

func main() {
	parser := argpars.New(
		argpars.WithName("pinger"),
		argpars.WithDescription("pings the host given as trailing parameter"),
		argpars.WithVersion("v1.0"),
		argpars.WithTrailingParameter(),
	)

	parser.AddArgument("--dry-run", "print the target instead of pinging it")
	parser.AddArgument("--loud", "print the target in uppercase")

	rootCmd, err := gen.Generate(parser, gen.WithValidation())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.SilenceUsage = true

	// The trailing parameter completes to known SSH hosts.
	comps, err := completions.Generate(rootCmd, parser, nil,
		completions.WithTrailingAction(net.ActionHosts()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	comps.Standalone()

	rootCmd.RunE = func(_ *cobra.Command, args []string) error {
		target := "localhost"
		if len(args) > 0 {
			target = args[0]
		}

		if parser.Passed("--loud") {
			target = strings.ToUpper(target)
		}

		if parser.Passed("--dry-run") {
			fmt.Println("would ping", target)

			return nil
		}

		fmt.Println("pinging", target)

		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
