package arguments

import (
	"io"

	"github.com/littlesmith/arguments/types"
	"github.com/littlesmith/arguments/version"
)

// WithApplication sets the application name shown in usage output. Defaults to the base name of the
// running executable.
func WithApplication(application string) ConfigureFunc {
	return func(p *Arguments, err *error) {
		p.SetApplication(application)
	}
}

// WithVersion sets the version shown in usage output. Defaults to 1.0.0.
func WithVersion(v version.Version) ConfigureFunc {
	return func(p *Arguments, err *error) {
		p.SetVersion(v)
	}
}

// WithVersionString is like WithVersion but parses v first
func WithVersionString(v string) ConfigureFunc {
	return func(p *Arguments, err *error) {
		parsed, e := version.Parse(v)
		if e != nil {
			*err = e
			return
		}
		p.SetVersion(parsed)
	}
}

// WithCopyright sets the copyright line printed after the version
func WithCopyright(copyright string) ConfigureFunc {
	return func(p *Arguments, err *error) {
		p.SetCopyright(copyright)
	}
}

// WithDescription sets the text printed below the header, wrapped at UsageWidth
func WithDescription(description string) ConfigureFunc {
	return func(p *Arguments, err *error) {
		p.SetDescription(description)
	}
}

// WithWriter sends usage output to w
func WithWriter(w io.Writer) ConfigureFunc {
	return func(p *Arguments, err *error) {
		p.SetWriter(w)
	}
}

// WithRenderer replaces the DefaultRenderer with r
func WithRenderer(r Renderer) ConfigureFunc {
	return func(p *Arguments, err *error) {
		p.SetRenderer(r)
	}
}

// WithValue is a wrapper for DefineValue
func WithValue(longName, shortName string, typeOf types.ArgumentType, defaultValue string, optional bool) ConfigureFunc {
	return func(p *Arguments, err *error) {
		*err = p.DefineValue(longName, shortName, typeOf, defaultValue, optional)
	}
}

// WithSwitch is a wrapper for DefineSwitch
func WithSwitch(longName, shortName string) ConfigureFunc {
	return func(p *Arguments, err *error) {
		*err = p.DefineSwitch(longName, shortName)
	}
}

// WithArgumentDescription is a wrapper for AddDescription. The option must be defined by an earlier
// configuration function.
func WithArgumentDescription(key, description string) ConfigureFunc {
	return func(p *Arguments, err *error) {
		*err = p.AddDescription(key, description)
	}
}
