// Package arguments parses command-line options into typed values and renders usage text.
//
// Options are defined up front with DefineValue and DefineSwitch, or through the functional
// configuration accepted by New. Parse scans the command line, validates every option and, when
// something is wrong or help was requested, prints usage to the configured writer:
//
//	args, err := arguments.New(
//		arguments.WithValue("count", "c", types.IntType, "5", true),
//		arguments.WithSwitch("verbose", "v"),
//		arguments.WithArgumentDescription("count", "number of repetitions"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !args.Parse(os.Args) {
//		os.Exit(1)
//	}
//	count, _ := args.GetInt("count")
package arguments

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/littlesmith/arguments/parse"
	"github.com/littlesmith/arguments/types"
	"github.com/littlesmith/arguments/util"
	"github.com/littlesmith/arguments/version"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Arguments is the registry of option definitions for one command line
type Arguments struct {
	application   string
	version       version.Version
	copyright     string
	description   string
	arguments     *orderedmap.OrderedMap[string, *Argument]
	longToShort   map[string]string
	messages      []string
	headerPrinted bool
	stdout        io.Writer
	renderer      Renderer
}

// New returns Arguments with the help switch defined and applies configs in order. The caller should
// always test for error on return because Arguments will be nil when a configuration fails.
func New(configs ...ConfigureFunc) (*Arguments, error) {
	p := &Arguments{
		application: filepath.Base(os.Args[0]),
		version:     version.New(1, 0, 0),
		arguments:   orderedmap.New[string, *Argument](),
		longToShort: map[string]string{},
		stdout:      os.Stdout,
		renderer:    NewRenderer(),
	}
	if err := p.DefineSwitch(helpLongName, helpShortName); err != nil {
		return nil, err
	}
	if err := p.AddDescription(helpShortName, helpDescription); err != nil {
		return nil, err
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// DefineValue defines an option which takes a value. The registry is left unchanged when either name is
// empty or already defined.
func (p *Arguments) DefineValue(longName, shortName string, typeOf types.ArgumentType, defaultValue string, optional bool) error {
	return p.define(NewArgument(longName, shortName, typeOf, defaultValue, optional, false))
}

// DefineSwitch defines an optional boolean option which is true when present and false otherwise
func (p *Arguments) DefineSwitch(longName, shortName string) error {
	return p.define(NewArgument(longName, shortName, types.BoolType, "false", true, true))
}

func (p *Arguments) define(a *Argument) error {
	if a.LongName == "" || a.ShortName == "" {
		return fmt.Errorf(types.FmtErrorWithString, types.ErrEmptyName,
			fmt.Sprintf("long name '%s', short name '%s'", a.LongName, a.ShortName))
	}
	if _, found := p.arguments.Get(a.ShortName); found {
		return types.NewError(types.ErrDuplicateShortName,
			fmt.Sprintf("Argument with shortname '%s' already defined.", a.ShortName))
	}
	if _, found := p.longToShort[a.LongName]; found {
		return types.NewError(types.ErrDuplicateLongName,
			fmt.Sprintf("Argument with longname '%s' already defined.", a.LongName))
	}

	p.arguments.Set(a.ShortName, a)
	p.longToShort[a.LongName] = a.ShortName

	return nil
}

// AddDescription attaches help text to the option named by key, which may be the long or the short name
func (p *Arguments) AddDescription(key, description string) error {
	a, err := p.lookupArgument(key)
	if err != nil {
		return err
	}
	a.Description = description

	return nil
}

// CheckKey resolves a long or short name to the short name which identifies the option
func (p *Arguments) CheckKey(key string) (string, error) {
	if _, found := p.arguments.Get(key); found {
		return key, nil
	}
	if short, found := p.longToShort[key]; found {
		return short, nil
	}

	return "", types.NewError(types.ErrUndefinedArgument, fmt.Sprintf("Undefined argument '%s'", key))
}

// Argument returns the option named by key, or nil when there is none
func (p *Arguments) Argument(key string) *Argument {
	a, err := p.lookupArgument(key)
	if err != nil {
		return nil
	}

	return a
}

// Keys returns the short names of all options in definition order
func (p *Arguments) Keys() []string {
	keys := make([]string, 0, p.arguments.Len())
	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Messages returns the problems found by Parse
func (p *Arguments) Messages() []string {
	return p.messages
}

// Application returns the name shown in usage output
func (p *Arguments) Application() string {
	return p.application
}

// Version returns the version shown in usage output
func (p *Arguments) Version() version.Version {
	return p.version
}

// SetApplication sets the name shown in usage output
func (p *Arguments) SetApplication(application string) {
	p.application = application
}

// SetVersion sets the version shown in usage output
func (p *Arguments) SetVersion(v version.Version) {
	p.version = v
}

// SetCopyright sets the copyright line printed after the version
func (p *Arguments) SetCopyright(copyright string) {
	p.copyright = copyright
}

// SetDescription sets the text printed below the header
func (p *Arguments) SetDescription(description string) {
	p.description = description
}

// SetWriter sets where usage output goes, os.Stdout by default
func (p *Arguments) SetWriter(w io.Writer) {
	p.stdout = w
}

// SetRenderer replaces the DefaultRenderer
func (p *Arguments) SetRenderer(r Renderer) {
	p.renderer = r
}

// Parse reads args and validates every option. The executable path is dropped when args starts with it.
// Parse returns false and prints usage when a problem was found or help was requested. All problems are
// collected before usage is printed, see Messages.
func (p *Arguments) Parse(args []string) bool {
	pruneExecPathFromArgs(&args)

	commits, messages := parse.Scan(args, p.lookup)
	for _, c := range commits {
		if a, found := p.arguments.Get(c.Key); found {
			a.SetValue(c.Value)
		}
	}
	p.messages = append(p.messages, messages...)

	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Check() {
			p.messages = append(p.messages, pair.Value.Message())
		}
	}

	help, _ := p.GetBool(helpShortName)
	if len(p.messages) > 0 || help {
		p.PrintUsage()
		return false
	}

	return true
}

// ParseString splits line using shell quoting rules and calls Parse
func (p *Arguments) ParseString(line string) bool {
	args, err := parse.Split(line)
	if err != nil {
		p.messages = append(p.messages, parse.MsgBadFormat)
		p.PrintUsage()
		return false
	}

	return p.Parse(args)
}

// GetString returns the value of a types.StringType option
func (p *Arguments) GetString(key string) (string, error) {
	return GetValue[string](p, key)
}

// GetInt returns the value of a types.IntType option
func (p *Arguments) GetInt(key string) (int64, error) {
	return GetValue[int64](p, key)
}

// GetFloat returns the value of a types.FloatType option
func (p *Arguments) GetFloat(key string) (float64, error) {
	return GetValue[float64](p, key)
}

// GetBool returns the value of a types.BoolType option or switch
func (p *Arguments) GetBool(key string) (bool, error) {
	return GetValue[bool](p, key)
}

// GetPoint returns the value of a types.PointType option
func (p *Arguments) GetPoint(key string) (types.Point, error) {
	return GetValue[types.Point](p, key)
}

// GetRectangle returns the value of a types.RectangleType option
func (p *Arguments) GetRectangle(key string) (types.Rectangle, error) {
	return GetValue[types.Rectangle](p, key)
}

// GetDate returns the value of a types.DateType option
func (p *Arguments) GetDate(key string) (time.Time, error) {
	return GetValue[time.Time](p, key)
}

// GetValue returns the value of the option named by key as T. T must be able to hold the declared type
// of the option: any sized integer for types.IntType, float32 or float64 for types.FloatType and so on.
// A mismatch returns types.ErrTypeMismatch. An optional option which was not given and has no default
// yields the zero value of T.
func GetValue[T any](p *Arguments, key string) (T, error) {
	var result T
	a, err := p.lookupArgument(key)
	if err != nil {
		return result, err
	}
	if ok, err := util.CanConvert(&result, a.TypeOf); !ok {
		return result, err
	}
	if !a.IsSet() && a.DefaultValue == "" {
		return result, nil
	}
	err = util.ConvertString(a.TextValue(), &result)

	return result, err
}

func (p *Arguments) lookupArgument(key string) (*Argument, error) {
	short, err := p.CheckKey(key)
	if err != nil {
		return nil, err
	}
	a, _ := p.arguments.Get(short)

	return a, nil
}

func (p *Arguments) lookup(key string) (string, bool, error) {
	a, err := p.lookupArgument(key)
	if err != nil {
		return "", false, err
	}

	return a.ShortName, a.Switch, nil
}

func pruneExecPathFromArgs(args *[]string) {
	if len(*args) > 0 {
		osBase := os.Args[0]
		if strings.EqualFold(osBase, (*args)[0]) {
			*args = (*args)[1:]
		}
	}
}
