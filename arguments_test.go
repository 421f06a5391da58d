package arguments

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/littlesmith/arguments/types"
	"github.com/littlesmith/arguments/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArguments(t *testing.T, configs ...ConfigureFunc) (*Arguments, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	configs = append([]ConfigureFunc{WithApplication("demo"), WithWriter(&buf)}, configs...)
	p, err := New(configs...)
	require.NoError(t, err)

	return p, &buf
}

func TestArguments_Defaults(t *testing.T) {
	p, buf := newTestArguments(t)

	assert.Equal(t, []string{"h"}, p.Keys())
	assert.Equal(t, version.New(1, 0, 0), p.Version())
	assert.Equal(t, "Show this message", p.Argument("help").Description)
	assert.True(t, p.Parse(nil))
	assert.Empty(t, buf.String())
}

func TestArguments_IntScenario(t *testing.T) {
	count := WithValue("count", "c", types.IntType, "5", true)

	p, _ := newTestArguments(t, count)
	assert.True(t, p.Parse([]string{"--count=10"}))
	n, err := p.GetInt("count")
	assert.NoError(t, err)
	assert.Equal(t, int64(10), n)

	p, _ = newTestArguments(t, count)
	assert.True(t, p.Parse([]string{}))
	n, err = p.GetInt("c")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.False(t, p.Argument("c").IsSet())
}

func TestArguments_SwitchScenario(t *testing.T) {
	verbose := WithSwitch("verbose", "v")

	p, _ := newTestArguments(t, verbose)
	assert.True(t, p.Parse([]string{"-v"}))
	b, err := p.GetBool("verbose")
	assert.NoError(t, err)
	assert.True(t, b)

	p, _ = newTestArguments(t, verbose)
	assert.True(t, p.Parse(nil))
	b, err = p.GetBool("verbose")
	assert.NoError(t, err)
	assert.False(t, b)
}

func TestArguments_RequiredScenario(t *testing.T) {
	p, buf := newTestArguments(t, WithValue("name", "n", types.StringType, "", false))

	assert.False(t, p.Parse(nil))
	require.Len(t, p.Messages(), 1)
	assert.Contains(t, p.Messages()[0], "name")
	assert.Contains(t, p.Messages()[0], "not optional")
	assert.Contains(t, buf.String(), "Error:\nArgument 'name' is not optional.\n")
}

func TestArguments_DuplicateDefinitions(t *testing.T) {
	p, _ := newTestArguments(t, WithValue("count", "c", types.IntType, "5", true))
	keys := p.Keys()

	err := p.DefineValue("count", "x", types.StringType, "", true)
	assert.ErrorIs(t, err, types.ErrDuplicateLongName)
	assert.EqualError(t, err, "Argument with longname 'count' already defined.")

	err = p.DefineSwitch("other", "c")
	assert.ErrorIs(t, err, types.ErrDuplicateShortName)
	assert.EqualError(t, err, "Argument with shortname 'c' already defined.")

	err = p.DefineSwitch("helper", "h")
	assert.ErrorIs(t, err, types.ErrDuplicateShortName)

	err = p.DefineValue("", "e", types.StringType, "", true)
	assert.ErrorIs(t, err, types.ErrEmptyName)

	assert.Equal(t, keys, p.Keys())
	assert.Nil(t, p.Argument("x"))
	assert.Nil(t, p.Argument("other"))
	assert.Equal(t, types.IntType, p.Argument("count").TypeOf)
}

func TestArguments_NewFailsOnDuplicate(t *testing.T) {
	p, err := New(WithSwitch("verbose", "v"), WithSwitch("version", "v"))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, types.ErrDuplicateShortName)

	p, err = New(WithArgumentDescription("missing", "text"))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, types.ErrUndefinedArgument)
}

func TestArguments_CheckKey(t *testing.T) {
	p, _ := newTestArguments(t, WithSwitch("verbose", "v"))

	key, err := p.CheckKey("verbose")
	assert.NoError(t, err)
	assert.Equal(t, "v", key)

	key, err = p.CheckKey("v")
	assert.NoError(t, err)
	assert.Equal(t, "v", key)

	_, err = p.CheckKey("loud")
	assert.ErrorIs(t, err, types.ErrUndefinedArgument)
	assert.EqualError(t, err, "Undefined argument 'loud'")
}

func TestArguments_UnknownKeyDoesNotAbort(t *testing.T) {
	p, _ := newTestArguments(t, WithSwitch("verbose", "v"))

	assert.False(t, p.Parse([]string{"--foo", "-v"}))
	assert.Equal(t, []string{"Undefined argument 'foo'"}, p.Messages())
	b, err := p.GetBool("v")
	assert.NoError(t, err)
	assert.True(t, b)
}

func TestArguments_Help(t *testing.T) {
	p, buf := newTestArguments(t)

	assert.False(t, p.Parse([]string{"--help"}))
	assert.Empty(t, p.Messages())
	assert.Contains(t, buf.String(), "Usage:\n")
	assert.NotContains(t, buf.String(), "Error")
}

func TestArguments_ParseValues(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOk   bool
		messages []string
		check    func(t *testing.T, p *Arguments)
	}{
		{
			name:   "quoted value keeps its quotes",
			args:   []string{"--name", `"John`, `Doe"`},
			wantOk: true,
			check: func(t *testing.T, p *Arguments) {
				s, err := p.GetString("name")
				assert.NoError(t, err)
				assert.Equal(t, `"John Doe"`, s)
			},
		},
		{
			name:   "point",
			args:   []string{"-n", "x", "--pos=[10:-20]"},
			wantOk: true,
			check: func(t *testing.T, p *Arguments) {
				pt, err := p.GetPoint("pos")
				assert.NoError(t, err)
				assert.Equal(t, types.Point{X: 10, Y: -20}, pt)
			},
		},
		{
			name:   "rectangle",
			args:   []string{"-n", "x", "-r", "[0:0]-[10:20]"},
			wantOk: true,
			check: func(t *testing.T, p *Arguments) {
				r, err := p.GetRectangle("rect")
				assert.NoError(t, err)
				assert.Equal(t, types.Rectangle{LowerRight: types.Point{X: 10, Y: 20}}, r)
			},
		},
		{
			name:   "float and date",
			args:   []string{"-n", "x", "--ratio=2.5", "--since", "2024-01-02"},
			wantOk: true,
			check: func(t *testing.T, p *Arguments) {
				f, err := p.GetFloat("ratio")
				assert.NoError(t, err)
				assert.Equal(t, 2.5, f)
				d, err := p.GetDate("since")
				assert.NoError(t, err)
				assert.Equal(t, 2024, d.Year())
				assert.Equal(t, time.January, d.Month())
				assert.Equal(t, 2, d.Day())
			},
		},
		{
			name:     "malformed values",
			args:     []string{"-n", "x", "--count=abc", "--pos=10:20"},
			messages: []string{"Value for argument 'count' could not be parsed.", "Value for argument 'pos' could not be parsed."},
		},
		{
			name:     "out of range",
			args:     []string{"-n", "x", "--count=99999999999999999999"},
			messages: []string{"Value for argument 'count' is out of range."},
		},
		{
			name:     "rectangle with one point",
			args:     []string{"-n", "x", "--rect=[0:0]"},
			messages: []string{"Value for argument 'rect' could not be parsed."},
		},
		{
			name:     "missing value",
			args:     []string{"-n", "x", "--count"},
			messages: []string{"Bad argument format."},
		},
		{
			name:     "every problem is reported",
			args:     []string{"--bogus", "--count=x"},
			messages: []string{"Undefined argument 'bogus'", "Argument 'name' is not optional.", "Value for argument 'count' could not be parsed."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestArguments(t,
				WithValue("name", "n", types.StringType, "", false),
				WithValue("count", "c", types.IntType, "5", true),
				WithValue("ratio", "f", types.FloatType, "1.0", true),
				WithValue("pos", "p", types.PointType, "[0:0]", true),
				WithValue("rect", "r", types.RectangleType, "", true),
				WithValue("since", "s", types.DateType, "", true))

			assert.Equal(t, tt.wantOk, p.Parse(tt.args))
			assert.Equal(t, tt.messages, p.Messages())
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

func TestArguments_ParseString(t *testing.T) {
	p, _ := newTestArguments(t,
		WithValue("name", "n", types.StringType, "", false),
		WithSwitch("verbose", "v"))

	assert.True(t, p.ParseString(`--name "John Doe" -v`))
	s, err := p.GetString("n")
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", s)

	p, _ = newTestArguments(t, WithValue("name", "n", types.StringType, "", false))
	assert.False(t, p.ParseString(`--name "John`))
	assert.Equal(t, []string{"Bad argument format."}, p.Messages())
}

func TestArguments_PrunesExecPath(t *testing.T) {
	p, _ := newTestArguments(t, WithSwitch("verbose", "v"))

	assert.True(t, p.Parse([]string{os.Args[0], "-v"}))
	b, _ := p.GetBool("v")
	assert.True(t, b)
}

func TestArguments_ApplicationName(t *testing.T) {
	p, err := New(WithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(os.Args[0]), p.Application())

	p, _ = newTestArguments(t)
	assert.True(t, p.Parse([]string{os.Args[0]}))
	assert.Equal(t, "demo", p.Application())
}

func TestGetValue_UnsetWithoutDefault(t *testing.T) {
	p, _ := newTestArguments(t,
		WithValue("count", "c", types.IntType, "", true),
		WithValue("ratio", "r", types.FloatType, "", true),
		WithValue("when", "w", types.DateType, "", true),
		WithValue("size", "s", types.RectangleType, "", true))
	require.True(t, p.Parse(nil))

	n, err := p.GetInt("count")
	assert.NoError(t, err)
	assert.Zero(t, n)

	f, err := p.GetFloat("r")
	assert.NoError(t, err)
	assert.Zero(t, f)

	d, err := p.GetDate("when")
	assert.NoError(t, err)
	assert.True(t, d.IsZero())

	r, err := p.GetRectangle("s")
	assert.NoError(t, err)
	assert.Equal(t, types.Rectangle{}, r)

	_, err = p.GetString("count")
	assert.ErrorIs(t, err, types.ErrTypeMismatch)

	require.True(t, p.Parse([]string{"-c", "7"}))
	n, err = p.GetInt("count")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestGetValue(t *testing.T) {
	p, _ := newTestArguments(t,
		WithValue("count", "c", types.IntType, "300", true),
		WithValue("name", "n", types.StringType, "anon", true))
	require.True(t, p.Parse(nil))

	n16, err := GetValue[int16](p, "count")
	assert.NoError(t, err)
	assert.Equal(t, int16(300), n16)

	_, err = GetValue[uint8](p, "count")
	assert.ErrorIs(t, err, types.ErrOutOfRange)

	_, err = GetValue[float64](p, "count")
	assert.ErrorIs(t, err, types.ErrTypeMismatch)

	_, err = p.GetInt("name")
	assert.ErrorIs(t, err, types.ErrTypeMismatch)

	_, err = GetValue[complex128](p, "count")
	assert.ErrorIs(t, err, types.ErrNotImplemented)

	_, err = p.GetString("missing")
	assert.ErrorIs(t, err, types.ErrUndefinedArgument)
}
