package argpars

import (
	"bufio"
	"fmt"
	"io"
)

// section is a titled free-text block appended to the help screen.
type section struct {
	title   string
	content string
}

// AddHelpSection appends a titled free-text block rendered after the
// options list on the help screen, in the order sections were added.
func (p *Parser) AddHelpSection(title, content string) {
	p.sections = append(p.sections, section{title: title, content: content})
}

// WriteHelp writes the help screen to the provided writer, in order: the
// usage banner, a blank separator, the program name, the description, one
// tab-separated line per known flag (reserved flags first, then registered
// entries in first-insertion order), any help sections, and the version
// string. Empty fields render as empty lines; WriteHelp never fails.
func (p *Parser) WriteHelp(writer io.Writer) {
	if writer == nil {
		return
	}

	buf := bufio.NewWriter(writer)

	fmt.Fprintln(buf, p.opts.usage)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, p.opts.name)
	fmt.Fprintln(buf, p.opts.description)

	for _, arg := range p.knownArguments() {
		fmt.Fprintf(buf, "\t%s\t%s\n", arg.Name, arg.Description)
	}

	for _, sec := range p.sections {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, sec.title)
		fmt.Fprintln(buf, sec.content)
	}

	fmt.Fprintln(buf, p.opts.version)

	buf.Flush()
}

// WriteVersion writes the version line to the provided writer.
func (p *Parser) WriteVersion(writer io.Writer) {
	if writer == nil {
		return
	}

	fmt.Fprintf(writer, "%s version: %s\n", p.opts.name, p.opts.version)
}

// DisplayHelpScreen writes the help screen to the configured output.
func (p *Parser) DisplayHelpScreen() {
	p.WriteHelp(p.opts.out)
}

// DisplayVersionScreen writes the version line to the configured output.
func (p *Parser) DisplayVersionScreen() {
	p.WriteVersion(p.opts.out)
}

// knownArguments returns the full help ordering: the reserved flags when
// enabled, then the registered entries.
func (p *Parser) knownArguments() []Argument {
	var known []Argument

	if p.opts.defaultArgs {
		known = append(known,
			Argument{Name: HelpFlag, Description: "display this help and exit"},
			Argument{Name: VersionFlag, Description: "output version information and exit"},
		)
	}

	return append(known, p.Arguments()...)
}
