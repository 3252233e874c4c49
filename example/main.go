package main

import (
	"fmt"
	"os"

	"github.com/argpars/argpars"
)

//
// This file shows the plain parser workflow: register flags, branch on
// the classification queries, and exit with the code Pars computes.
//

func printStuff() {
	fmt.Println("stuff")
}

func printParam(toPrint string) {
	fmt.Println(toPrint)
}

func main() {
	// Basic info about the app, supplied at construction.
	args := argpars.New(
		argpars.WithUsage(fmt.Sprintf("Usage: %s [OPTION]... [TEST]\n", os.Args[0])),
		argpars.WithName("Test App"),
		argpars.WithDescription("This is a test description"),
		argpars.WithVersion("v1.0"),
	)

	// Sections rendered after the options list on the help screen.
	args.AddHelpSection("TEST SECTION:", "\tthis is a test section!\n")
	args.AddHelpSection("SECOND TEST SECTION:", "\tthis is another test section!\n\tWith multiple lines!")

	// Arguments of the app.
	args.AddArgument("--print-stuff", `display "stuff"`)
	args.AddArgument("--print-param", "display whatever you pass as a parameter")

	switch {
	case args.NoArgumentsPassed():
		args.DisplayHelpScreen()

	case args.DefaultArgumentsPassed() || args.WrongArgumentsPassed():
		// Pars below renders the help/version screen, or the error message.

	default:
		if args.Passed("--print-stuff") {
			printStuff()
		}

		if args.Passed("--print-param") {
			printParam(args.ParameterFor("--print-param"))
		}
	}

	os.Exit(args.Pars())
}
