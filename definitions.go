package arguments

// UsageWidth is the column at which usage output is wrapped
const UsageWidth = 80

// columnPadding is added to the longest name pair to get the width of the name column in usage output
const columnPadding = 8

const (
	helpLongName    = "help"
	helpShortName   = "h"
	helpDescription = "Show this message"
)

// ConfigureFunc is used when configuring Arguments through New
type ConfigureFunc func(p *Arguments, err *error)

// Renderer produces the per-option parts of usage output
type Renderer interface {
	// ArgumentToken renders a in the usage line, for instance [-c|--count[=5]]
	ArgumentToken(a *Argument) string
	// ArgumentUsage renders the description block of a. columnWidth is the width of the name column.
	ArgumentUsage(a *Argument, columnWidth int) []string
}
