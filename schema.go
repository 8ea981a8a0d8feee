package schemaflag

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// Separator separates the tokens of a schema template.
	Separator = ","
	// IntMarker marks an integer flag in a schema token, e.g. "p#".
	IntMarker = '#'
	// StringMarker marks a text flag in a schema token, e.g. "d*".
	StringMarker = '*'
	// FlagPrefix is the character every cli argument has to start with.
	FlagPrefix = '-'
)

// Kind is the value kind of a flag. It is fixed when the schema is compiled.
type Kind int

const (
	// KindBool is a flag set by its presence.
	KindBool Kind = iota + 1
	// KindInt is a signed 32-bit integer flag.
	KindInt
	// KindString is a text flag.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// flagSlot is a single typed value cell of a schema.
type flagSlot interface {
	Kind() Kind
	set(raw string) error
	reset()
	clone() flagSlot
	String() string
}

type slot[T bool | int32 | string] struct {
	kind       Kind
	value      T
	defaultVal T
	parse      func(raw string) (T, error)
}

func (s *slot[T]) Kind() Kind { return s.kind }

// set overwrites the value with the parsed raw value. The value is left untouched on a parse failure.
func (s *slot[T]) set(raw string) error {
	v, err := s.parse(raw)
	if err != nil {
		return err
	}
	s.value = v
	return nil
}

func (s *slot[T]) reset() { s.value = s.defaultVal }

func (s *slot[T]) clone() flagSlot {
	c := *s
	return &c
}

func (s *slot[T]) String() string {
	if v, ok := any(s.value).(string); ok {
		return strconv.Quote(v)
	}
	return fmt.Sprint(s.value)
}

func newBoolSlot() *slot[bool] {
	// presence is enough, anything after the key is ignored
	return &slot[bool]{kind: KindBool, parse: func(string) (bool, error) { return true, nil }}
}

func newIntSlot() *slot[int32] {
	return &slot[int32]{kind: KindInt, parse: func(raw string) (int32, error) {
		v, err := strconv.ParseInt(raw, 10, 32)
		return int32(v), err
	}}
}

func newStringSlot() *slot[string] {
	return &slot[string]{kind: KindString, parse: func(raw string) (string, error) { return raw, nil }}
}

// Schema maps single character flag keys to typed values.
// It is created by Compile, filled by Match and read with GetBool, GetInt and GetString.
// A Schema is not safe for concurrent use.
type Schema struct {
	keys  []rune // template order
	slots map[rune]flagSlot
}

/*
Compile parses a schema template into a Schema.

The template is a comma separated list of tokens. The first character of a token is the flag key,
the optional second character is the type marker:

	l    bool flag, defaults to false
	p#   integer flag, defaults to 0
	d*   text flag, defaults to ""

Tokens are compiled left to right and the first problem found is returned as an *Error
of kind DuplicateFlag, UnsupportedType or MalformedToken. An empty template compiles to an empty Schema.
*/
func Compile(template string) (*Schema, error) {
	s := &Schema{slots: make(map[rune]flagSlot)}
	if template == "" {
		return s, nil
	}

	for _, token := range strings.Split(template, Separator) {
		chars := []rune(token)
		if len(chars) == 0 || !utf8.ValidString(token) {
			return nil, &Error{Kind: MalformedToken, Token: token}
		}
		key := chars[0]
		if _, ex := s.slots[key]; ex {
			return nil, &Error{Kind: DuplicateFlag, Token: token, Key: key}
		}

		var fs flagSlot
		switch len(chars) {
		case 1:
			fs = newBoolSlot()
		case 2:
			switch chars[1] {
			case IntMarker:
				fs = newIntSlot()
			case StringMarker:
				fs = newStringSlot()
			default:
				return nil, &Error{Kind: UnsupportedType, Token: token, Key: key}
			}
		default:
			return nil, &Error{Kind: MalformedToken, Token: token, Key: key}
		}
		s.keys = append(s.keys, key)
		s.slots[key] = fs
	}
	return s, nil
}

// MustCompile is like Compile but panics if the template cannot be compiled.
func MustCompile(template string) *Schema {
	s, err := Compile(template)
	if err != nil {
		panic(fmt.Sprintf("schemaflag: Compile(%q): %s", template, err.Error()))
	}
	return s
}

// Keys returns the flag keys in the order they were declared in the template.
func (s *Schema) Keys() []rune {
	keys := make([]rune, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Kind returns the kind of the flag with the given key and whether the key is declared at all.
func (s *Schema) Kind(key rune) (Kind, bool) {
	fs, ex := s.slots[key]
	if !ex {
		return 0, false
	}
	return fs.Kind(), true
}

// Len returns the number of declared flags.
func (s *Schema) Len() int {
	return len(s.keys)
}

// Clone returns a deep copy of the schema including the current values.
func (s *Schema) Clone() *Schema {
	c := &Schema{
		keys:  s.Keys(),
		slots: make(map[rune]flagSlot, len(s.slots)),
	}
	for key, fs := range s.slots {
		c.slots[key] = fs.clone()
	}
	return c
}

// String renders the current values in template order, e.g. `l=true p=5050 d="/usr/bin"`.
func (s *Schema) String() string {
	parts := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		parts = append(parts, string(key)+"="+s.slots[key].String())
	}
	return strings.Join(parts, " ")
}
