package parse

import "strings"

// MsgBadFormat is recorded when the argument list ends while a value is still expected
const MsgBadFormat = "Bad argument format."

// ScanState is the state of the token scanner
type ScanState int

const (
	AwaitingKey ScanState = iota
	AwaitingValue
	CollectingQuotedValue
	ValueReady
)

func (s ScanState) String() string {
	switch s {
	case AwaitingKey:
		return "AwaitingKey"
	case AwaitingValue:
		return "AwaitingValue"
	case CollectingQuotedValue:
		return "CollectingQuotedValue"
	case ValueReady:
		return "ValueReady"
	default:
		return "ScanState(?)"
	}
}

// LookupFunc resolves a key as typed on the command line to its canonical name and reports whether it
// names a switch. An error means the key is unknown; its text becomes a scanner message.
type LookupFunc func(key string) (canonical string, isSwitch bool, err error)

// Step is the scanner state carried from one token to the next
type Step struct {
	State ScanState
	Key   string
	Value string
}

// EffectKind tells what a transition produced
type EffectKind int

const (
	NoEffect EffectKind = iota
	Commit
	Message
)

// Effect is the observable output of a transition. Key and Value are set for Commit, Text for Message.
type Effect struct {
	Kind  EffectKind
	Key   string
	Value string
	Text  string
}

// Transition consumes one token. It has no side effects: the caller applies the returned Effect.
// ValueReady is never returned, a ready value is committed and the scanner goes back to AwaitingKey.
func Transition(step Step, token string, lookup LookupFunc) (Step, Effect) {
	var (
		next   Step
		effect Effect
	)

	switch step.State {
	case AwaitingValue:
		next = startValue(step.Key, token)
	case CollectingQuotedValue:
		next = collect(step, token)
	default:
		next, effect = awaitKey(token, lookup)
	}

	if next.State == ValueReady {
		return Step{State: AwaitingKey}, Effect{Kind: Commit, Key: next.Key, Value: next.Value}
	}

	return next, effect
}

// Scan runs Transition over args and returns the commits in input order together with any messages
func Scan(args []string, lookup LookupFunc) (commits []Effect, messages []string) {
	cursor := NewCursor(args)
	step := Step{State: AwaitingKey}
	for cursor.Advance() {
		var effect Effect
		step, effect = Transition(step, cursor.CurrentArg(), lookup)
		switch effect.Kind {
		case Commit:
			commits = append(commits, effect)
		case Message:
			messages = append(messages, effect.Text)
		}
	}

	if step.State != AwaitingKey {
		messages = append(messages, MsgBadFormat)
	}

	return commits, messages
}

func awaitKey(token string, lookup LookupFunc) (Step, Effect) {
	key, value, inline := strings.Cut(token, "=")
	key = stripPrefix(key)

	canonical, isSwitch, err := lookup(key)
	if err != nil {
		return Step{State: AwaitingKey}, Effect{Kind: Message, Text: err.Error()}
	}

	switch {
	case isSwitch:
		return Step{State: ValueReady, Key: canonical, Value: "true"}, Effect{}
	case !inline:
		return Step{State: AwaitingValue, Key: canonical}, Effect{}
	default:
		return startValue(canonical, value), Effect{}
	}
}

func stripPrefix(key string) string {
	if strings.HasPrefix(key, "--") {
		return key[2:]
	}

	return strings.TrimPrefix(key, "-")
}

// quote groups words into one value. An apostrophe is ordinary text.
const quote = '"'

func startValue(key, value string) Step {
	if strings.HasPrefix(value, string(quote)) {
		if closesQuote(value[1:]) {
			return Step{State: ValueReady, Key: key, Value: value}
		}
		return Step{State: CollectingQuotedValue, Key: key, Value: value}
	}

	return Step{State: ValueReady, Key: key, Value: value}
}

func collect(step Step, token string) Step {
	step.Value += " " + token
	// the opening quote is never a closing candidate
	if closesQuote(step.Value[1:]) {
		step.State = ValueReady
	}

	return step
}

// closesQuote reports whether s ends in a quote not preceded by a backslash
func closesQuote(s string) bool {
	n := len(s)
	if n == 0 || s[n-1] != quote {
		return false
	}

	return n < 2 || s[n-2] != '\\'
}
