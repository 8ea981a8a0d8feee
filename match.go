package schemaflag

import (
	"os"
	"strings"
	"unicode/utf8"
)

/*
Match applies the raw cli arguments to the schema in the order they are given and returns the schema.

Every argument has the form -<key><value>. A bool flag is set to true and anything after its key is ignored,
an integer flag takes the base-10 value after the key, a text flag takes the rest of the argument verbatim.
Setting the same flag again overwrites the previous value.

Matching stops at the first invalid argument and an *Error of kind MissingPrefix, MissingFlagKey, UnknownFlag
or InvalidIntegerValue is returned. In that case all the values of the schema are reset to their defaults.
*/
func (s *Schema) Match(args []string) (_ *Schema, retErr error) {
	defer func() {
		if retErr != nil {
			s.Reset()
		}
	}()

	for _, arg := range args {
		if err := s.matchArg(arg); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Schema) matchArg(arg string) error {
	rest, hasPrefix := strings.CutPrefix(arg, string(FlagPrefix))
	if !hasPrefix {
		return &Error{Kind: MissingPrefix, Token: arg}
	}
	if rest == "" {
		return &Error{Kind: MissingFlagKey, Token: arg}
	}
	// the value is kept byte for byte, only the key has to be valid UTF-8
	key, size := utf8.DecodeRuneInString(rest)
	value := rest[size:]

	fs, ex := s.slots[key]
	if !ex || (key == utf8.RuneError && size == 1) {
		return &Error{Kind: UnknownFlag, Token: arg, Key: key}
	}
	if err := fs.set(value); err != nil {
		// bool and text slots always accept their value
		return &Error{Kind: InvalidIntegerValue, Token: value, Key: key, Err: err}
	}
	return nil
}

// Match applies args to s, see Schema.Match.
func Match(s *Schema, args []string) (*Schema, error) {
	return s.Match(args)
}

// Reset sets every flag of the schema back to its default value.
func (s *Schema) Reset() {
	for _, fs := range s.slots {
		fs.reset()
	}
}

// Parse compiles the template and matches args against the resulting schema.
func Parse(template string, args []string) (*Schema, error) {
	s, err := Compile(template)
	if err != nil {
		return nil, err
	}
	return s.Match(args)
}

// ParseArgs is Parse applied to the arguments of the running program.
func ParseArgs(template string) (*Schema, error) {
	return Parse(template, os.Args[1:]) // first argument is a command name - we skip it
}
