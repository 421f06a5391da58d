package parse

import "github.com/google/shlex"

// Split breaks a command line into tokens using shell quoting rules. Quotes are consumed, so a quoted
// value becomes a single token.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
