package command

import (
	"errors"
	"io"
	"strings"
)

// InputType tells where the input of a command comes from.
type InputType int

const (
	InputNone InputType = iota
	InputCommandLine
	InputStdin
)

func (t InputType) String() string {
	switch t {
	case InputCommandLine:
		return "command line"
	case InputStdin:
		return "stdin"
	default:
		return "no"
	}
}

var (
	// ErrConflictingInputs ...
	ErrConflictingInputs = errors.New(
		`conflicting inputs: may only specify one of "--stdin" and command line parameters`,
	)
	// ErrWrongArgCount ...
	ErrWrongArgCount = errors.New("syntax error: wrong number of arguments")
	// ErrUnknownCommand ...
	ErrUnknownCommand = errors.New("unknown command")
)

// ResolveInputType picks the input source from the --stdin flag and the
// positional arguments. Using both is an error.
func ResolveInputType(readStdin bool, args []string) (InputType, error) {
	switch {
	case readStdin && len(args) > 0:
		return InputNone, ErrConflictingInputs
	case readStdin:
		return InputStdin, nil
	case len(args) > 0:
		return InputCommandLine, nil
	}
	return InputNone, nil
}

// resolveInput returns the input text, or nil when there is none. Standard
// input is read to the end and trimmed, a command line argument is taken
// as is.
func resolveInput(inputType InputType, args []string, in io.Reader) (*string, error) {
	switch inputType {
	case InputStdin:
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		input := strings.TrimSpace(string(data))
		return &input, nil
	case InputCommandLine:
		if len(args) != 1 {
			return nil, ErrWrongArgCount
		}
		input := args[0]
		return &input, nil
	}
	return nil, nil
}
