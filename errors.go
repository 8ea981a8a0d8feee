package schemaflag

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures reported by Compile, Match and the accessors.
type ErrorKind int

const (
	// schema compilation
	DuplicateFlag ErrorKind = iota + 1
	UnsupportedType
	MalformedToken

	// argument matching
	MissingPrefix
	MissingFlagKey
	UnknownFlag
	InvalidIntegerValue

	// value access
	UnknownArgument
	TypeMismatch
)

// Sentinel errors, one per ErrorKind. Every *Error matches the sentinel of its kind with errors.Is.
var (
	ErrDuplicateFlag       = errors.New("duplicate flag")
	ErrUnsupportedType     = errors.New("unsupported flag type")
	ErrMalformedToken      = errors.New("malformed schema token")
	ErrMissingPrefix       = errors.New("missing flag prefix")
	ErrMissingFlagKey      = errors.New("missing flag key")
	ErrUnknownFlag         = errors.New("unknown flag")
	ErrInvalidIntegerValue = errors.New("invalid integer value")
	ErrUnknownArgument     = errors.New("unknown argument")
	ErrTypeMismatch        = errors.New("type mismatch")
)

var kindSentinels = map[ErrorKind]error{
	DuplicateFlag:       ErrDuplicateFlag,
	UnsupportedType:     ErrUnsupportedType,
	MalformedToken:      ErrMalformedToken,
	MissingPrefix:       ErrMissingPrefix,
	MissingFlagKey:      ErrMissingFlagKey,
	UnknownFlag:         ErrUnknownFlag,
	InvalidIntegerValue: ErrInvalidIntegerValue,
	UnknownArgument:     ErrUnknownArgument,
	TypeMismatch:        ErrTypeMismatch,
}

func (k ErrorKind) String() string {
	if s, ok := kindSentinels[k]; ok {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error returned by every failing operation of this package.
// Token holds the offending schema token, raw argument or raw value, depending on Kind.
// Key is set for the failures that are about a single flag.
type Error struct {
	Kind  ErrorKind
	Token string
	Key   rune
	Have  Kind  // declared kind, TypeMismatch only
	Want  Kind  // requested kind, TypeMismatch only
	Err   error // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case DuplicateFlag:
		return fmt.Sprintf("duplicate flag %q in schema", string(e.Key))
	case UnsupportedType:
		return fmt.Sprintf("unsupported flag type in schema token %q", e.Token)
	case MalformedToken:
		return fmt.Sprintf("malformed schema token %q", e.Token)
	case MissingPrefix:
		return fmt.Sprintf("cli argument %q does not start with %q", e.Token, FlagPrefix)
	case MissingFlagKey:
		return fmt.Sprintf("cli argument %q has no flag key", e.Token)
	case UnknownFlag:
		return fmt.Sprintf("unexpected cli argument %q", e.Token)
	case InvalidIntegerValue:
		return fmt.Sprintf("invalid integer value %q", e.Token)
	case UnknownArgument:
		return fmt.Sprintf("no flag %q was declared", string(e.Key))
	case TypeMismatch:
		return fmt.Sprintf("flag %q is of type %s, not %s", string(e.Key), e.Have, e.Want)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error of e's kind.
func (e *Error) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}
