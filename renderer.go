package arguments

import (
	"fmt"
	"strings"

	"github.com/littlesmith/arguments/text"
	"github.com/littlesmith/arguments/util"
)

// DefaultRenderer renders options the way PrintUsage lays them out
type DefaultRenderer struct{}

// NewRenderer returns the renderer Arguments uses unless WithRenderer says otherwise
func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{}
}

// ArgumentToken renders a for the usage line. Optional arguments are enclosed in brackets and show their
// default, required ones show a (value) placeholder. Switches take no value.
func (r *DefaultRenderer) ArgumentToken(a *Argument) string {
	var sb strings.Builder
	if a.Optional {
		sb.WriteString("[")
	}
	sb.WriteString("-" + a.ShortName + "|--" + a.LongName)
	if !a.Switch {
		if a.Optional && a.DefaultValue != "" {
			sb.WriteString("[=" + a.DefaultValue + "]")
		} else {
			sb.WriteString("[=(value)]")
		}
	}
	if a.Optional {
		sb.WriteString("]")
	}

	return sb.String()
}

// ArgumentUsage renders the name column of a followed by its description wrapped to the remaining width.
// Optional arguments which take a value get an extra line naming their default.
func (r *DefaultRenderer) ArgumentUsage(a *Argument, columnWidth int) []string {
	name := "--" + a.LongName + " | -" + a.ShortName + ": "
	if pad := columnWidth - len(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}
	indent := strings.Repeat(" ", columnWidth)

	// names wider than the usage width leave one column for the description
	block := text.ToBlock(a.Description, util.Max(UsageWidth-columnWidth, 1), text.AlignLeft)
	lines := make([]string, 0, len(block)+1)
	if len(block) == 0 {
		lines = append(lines, strings.TrimRight(name, " "))
	} else {
		lines = append(lines, name+block[0])
		for _, line := range block[1:] {
			lines = append(lines, indent+line)
		}
	}

	if a.Optional && !a.Switch {
		optional := indent + "optional"
		if a.DefaultValue != "" {
			optional += " - default: " + a.DefaultValue
		}
		lines = append(lines, optional)
	}

	return lines
}

// PrintHeader writes the application name, version, copyright and description. Only the first call
// writes anything.
func (p *Arguments) PrintHeader() {
	if p.headerPrinted {
		return
	}

	fmt.Fprintf(p.stdout, "%s %s\n", p.application, p.version)
	if p.copyright != "" {
		fmt.Fprintln(p.stdout, p.copyright)
	}
	fmt.Fprintln(p.stdout)
	if p.description != "" {
		for _, line := range text.ToBlock(p.description, UsageWidth, text.AlignLeft) {
			fmt.Fprintln(p.stdout, line)
		}
		fmt.Fprintln(p.stdout)
	}
	p.headerPrinted = true
}

// PrintUsage writes the header, the messages collected by Parse, the usage line and a description of
// every option in definition order
func (p *Arguments) PrintUsage() {
	p.PrintHeader()

	if len(p.messages) > 0 {
		label := "Error"
		if len(p.messages) > 1 {
			label = "Errors"
		}
		fmt.Fprintln(p.stdout, label+":")
		for _, msg := range p.messages {
			fmt.Fprintln(p.stdout, msg)
		}
		fmt.Fprintln(p.stdout)
	}

	fmt.Fprintln(p.stdout, "Usage:")
	tokens := make([]string, 0, p.arguments.Len())
	columnWidth := 0
	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		a := pair.Value
		tokens = append(tokens, p.renderer.ArgumentToken(a))
		columnWidth = util.Max(columnWidth, len(a.LongName)+len(a.ShortName))
	}
	columnWidth += columnPadding

	for _, line := range usageLines(p.application, tokens) {
		fmt.Fprintln(p.stdout, line)
	}
	fmt.Fprintln(p.stdout)

	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		for _, line := range p.renderer.ArgumentUsage(pair.Value, columnWidth) {
			fmt.Fprintln(p.stdout, line)
		}
	}
}

// usageLines starts with application and appends each token, wrapping at UsageWidth. Continuation lines
// are indented by the length of application.
func usageLines(application string, tokens []string) []string {
	indent := strings.Repeat(" ", len(application))
	var lines []string
	line := application
	for _, tok := range tokens {
		if len(line)+1+len(tok) > UsageWidth && line != indent {
			lines = append(lines, line)
			line = indent
		}
		line += " " + tok
	}

	return append(lines, line)
}
