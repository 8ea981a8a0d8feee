package schemaflag

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "duplicate flag",
			err:  &Error{Kind: DuplicateFlag, Token: "p*", Key: 'p'},
			want: `duplicate flag "p" in schema`,
		},
		{
			name: "unsupported type",
			err:  &Error{Kind: UnsupportedType, Token: "e&", Key: 'e'},
			want: `unsupported flag type in schema token "e&"`,
		},
		{
			name: "malformed token",
			err:  &Error{Kind: MalformedToken, Token: "KEKW", Key: 'K'},
			want: `malformed schema token "KEKW"`,
		},
		{
			name: "missing prefix",
			err:  &Error{Kind: MissingPrefix, Token: "WUT"},
			want: `cli argument "WUT" does not start with '-'`,
		},
		{
			name: "missing flag key",
			err:  &Error{Kind: MissingFlagKey, Token: "-"},
			want: `cli argument "-" has no flag key`,
		},
		{
			name: "unknown flag",
			err:  &Error{Kind: UnknownFlag, Token: "-s8080", Key: 's'},
			want: `unexpected cli argument "-s8080"`,
		},
		{
			name: "invalid integer",
			err:  &Error{Kind: InvalidIntegerValue, Token: "not_int", Key: 'p'},
			want: `invalid integer value "not_int"`,
		},
		{
			name: "unknown argument",
			err:  &Error{Kind: UnknownArgument, Key: 'l'},
			want: `no flag "l" was declared`,
		},
		{
			name: "type mismatch",
			err:  &Error{Kind: TypeMismatch, Key: 'p', Have: KindString, Want: KindInt},
			want: `flag "p" is of type string, not int`,
		},
		{
			name: "unknown kind",
			err:  &Error{Kind: ErrorKind(99)},
			want: "ErrorKind(99)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestErrorIs(t *testing.T) {
	for kind, sentinel := range kindSentinels {
		err := error(&Error{Kind: kind})
		assert.ErrorIs(t, err, sentinel, kind.String())
		for other, otherSentinel := range kindSentinels {
			if other != kind {
				assert.False(t, errors.Is(err, otherSentinel), "%s matched %s", kind, other)
			}
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := &strconv.NumError{Func: "ParseInt", Num: "x", Err: strconv.ErrSyntax}
	err := &Error{Kind: InvalidIntegerValue, Token: "x", Err: cause}
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.ErrorIs(t, err, ErrInvalidIntegerValue)
}
