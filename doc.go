/*
Package schemaflag parses single character cli flags described by a compact schema template.

Example of a schema template:

	l,p#,d*

The template consists of comma separated tokens. The first character of a token is the flag key.
A token without a second character declares a bool flag, the '#' marker declares an integer flag
and the '*' marker declares a text flag. The schema above accepts arguments like

	./a_program -l -p5050 -d/usr/bin

A bool flag is set by its presence. The value of an integer or text flag directly follows the key,
there is no separator. Flags that are not passed keep their defaults: false, 0 and "".

Typical usage:

	s, err := schemaflag.ParseArgs("l,p#,d*")
	if err != nil {
		log.Fatalf("error while parsing the cli parameters: %s", err.Error())
	}
	port, err := s.GetInt('p')

All the errors returned by this package are of the type *Error and can be matched against the sentinel
errors with errors.Is, e.g. errors.Is(err, schemaflag.ErrUnknownFlag).
*/
package schemaflag
