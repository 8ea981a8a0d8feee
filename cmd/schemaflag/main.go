/*
Command schemaflag parses its own arguments against the "l,p#,d*" schema and prints the values.

	schemaflag -l -p5050 -d/usr/bin

The -x flag is queried on purpose although it is not declared, to show how accessor errors are reported.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/matusvla/schemaflag"
)

const template = "l,p#,d*"

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		log.Fatalf("error while parsing the cli parameters: %s", err.Error())
	}
}

func run(w io.Writer, args []string) error {
	s, err := schemaflag.Parse(template, args)
	if err != nil {
		return err
	}

	l, err := s.GetBool('l')
	if err != nil {
		return err
	}
	p, err := s.GetInt('p')
	if err != nil {
		return err
	}
	d, err := s.GetString('d')
	if err != nil {
		return err
	}

	key := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", key("-l"), l)
	fmt.Fprintf(w, "%s %d\n", key("-p"), p)
	fmt.Fprintf(w, "%s %s\n", key("-d"), d)

	if _, err := s.GetBool('x'); err != nil {
		color.New(color.FgYellow).Fprintln(w, err.Error())
	}
	return nil
}
