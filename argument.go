package arguments

import (
	"errors"
	"fmt"
	"time"

	"github.com/littlesmith/arguments/types"
	"github.com/littlesmith/arguments/util"
)

// Argument describes a command-line option and holds the raw text it received
type Argument struct {
	LongName     string
	ShortName    string
	Description  string
	TypeOf       types.ArgumentType
	DefaultValue string
	Switch       bool
	Optional     bool

	value   string
	set     bool
	message string
}

// NewArgument returns an Argument which has not been set
func NewArgument(longName, shortName string, typeOf types.ArgumentType, defaultValue string, optional, isSwitch bool) *Argument {
	return &Argument{
		LongName:     longName,
		ShortName:    shortName,
		TypeOf:       typeOf,
		DefaultValue: defaultValue,
		Optional:     optional,
		Switch:       isSwitch,
	}
}

// SetValue stores the raw text received on the command line
func (a *Argument) SetValue(value string) {
	a.value = value
	a.set = true
}

// IsSet reports whether the argument was given on the command line
func (a *Argument) IsSet() bool {
	return a.set
}

// TextValue returns the received text, or the default when the argument was not given
func (a *Argument) TextValue() string {
	if a.set {
		return a.value
	}

	return a.DefaultValue
}

// Message returns the failure recorded by the last call to Check
func (a *Argument) Message() string {
	return a.message
}

// Check validates the argument and records a message when it fails. A required argument must have been
// set, and the text value must coerce to the declared type. An argument which was not given and has no
// default is not coerced.
func (a *Argument) Check() bool {
	a.message = ""
	if !a.set {
		if !a.Optional {
			a.message = fmt.Sprintf("Argument '%s' is not optional.", a.LongName)
			return false
		}
		if a.DefaultValue == "" {
			return true
		}
	}

	if err := a.checkValue(); err != nil {
		if errors.Is(err, types.ErrOutOfRange) {
			a.message = fmt.Sprintf("Value for argument '%s' is out of range.", a.LongName)
		} else {
			a.message = fmt.Sprintf("Value for argument '%s' could not be parsed.", a.LongName)
		}
		return false
	}

	return true
}

func (a *Argument) checkValue() error {
	text := a.TextValue()
	var err error
	switch a.TypeOf {
	case types.StringType:
	case types.IntType:
		_, err = util.Coerce[int64](text)
	case types.FloatType:
		_, err = util.Coerce[float64](text)
	case types.BoolType:
		_, err = util.Coerce[bool](text)
	case types.PointType:
		_, err = util.Coerce[types.Point](text)
	case types.RectangleType:
		_, err = util.Coerce[types.Rectangle](text)
	case types.DateType:
		_, err = util.Coerce[time.Time](text)
	default:
		err = fmt.Errorf(types.FmtErrorWithString, types.ErrNotImplemented, a.TypeOf)
	}

	return err
}
