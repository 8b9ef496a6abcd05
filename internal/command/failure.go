package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ximinez/ripple-offline-tool/internal/serialize"
	"github.com/ximinez/ripple-offline-tool/internal/signing"
	"github.com/ximinez/ripple-offline-tool/pkg/binarycodec"
	"github.com/ximinez/ripple-offline-tool/pkg/keys"
	"github.com/ximinez/ripple-offline-tool/pkg/ripplekey"
)

// Kind classifies a failure.
type Kind int

const (
	KindInputParse Kind = iota
	KindStructural
	KindKeyMaterial
	KindFileSystem
	KindArgument
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInputParse:
		return "input parse"
	case KindStructural:
		return "structural validation"
	case KindKeyMaterial:
		return "key material"
	case KindFileSystem:
		return "file system"
	case KindArgument:
		return "argument"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Failure is the error a command returns. Its text is what gets printed
// on standard error: a cause line, optionally followed by detail lines.
type Failure struct {
	Kind  Kind
	Lines []string
	Err   error
}

func (f *Failure) Error() string {
	if len(f.Lines) == 0 && f.Err != nil {
		return f.Err.Error()
	}
	return strings.Join(f.Lines, "\n")
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func newFailure(err error, lines ...string) *Failure {
	return &Failure{Kind: classify(err), Lines: lines, Err: err}
}

// unableTo builds the failure of an operation on input, with the error
// shown on a sub-line after label. An empty label hides the error.
func unableTo(verb, input, label string, err error) *Failure {
	lines := []string{fmt.Sprintf("Unable to %s \"%s\"", verb, input)}
	if label != "" && err != nil {
		lines = append(lines, fmt.Sprintf("%s: %s", label, err))
	}
	return newFailure(err, lines...)
}

func classify(err error) Kind {
	switch {
	case err == nil:
		return KindInputParse
	case errors.Is(err, ErrConflictingInputs),
		errors.Is(err, ErrWrongArgCount),
		errors.Is(err, ErrUnknownCommand):
		return KindArgument
	case errors.Is(err, ripplekey.ErrKeyFileRead),
		errors.Is(err, ripplekey.ErrKeyFileExists),
		errors.Is(err, ripplekey.ErrKeyFileWrite):
		return KindFileSystem
	case errors.Is(err, ripplekey.ErrKeyFileContent),
		errors.Is(err, keys.ErrInvalidSeed),
		errors.Is(err, keys.ErrInvalidKeyType),
		errors.Is(err, keys.ErrInvalidPublicKey),
		errors.Is(err, keys.ErrKeyTypeMismatch):
		return KindKeyMaterial
	case errors.Is(err, binarycodec.ErrMissingField),
		errors.Is(err, binarycodec.ErrWrongFieldType),
		errors.Is(err, binarycodec.ErrInvalidFieldData),
		errors.Is(err, binarycodec.ErrUnknownField):
		return KindStructural
	case errors.Is(err, signing.ErrNilTransaction),
		errors.Is(err, signing.ErrNilObject),
		errors.Is(err, signing.ErrInvalidSignature),
		errors.Is(err, signing.ErrUnsortedSigners),
		errors.Is(err, signing.ErrNotSigned):
		return KindInternal
	case errors.Is(err, serialize.ErrInvalidJSON),
		errors.Is(err, serialize.ErrUnableToDeserialize):
		return KindInputParse
	}
	return KindInputParse
}
