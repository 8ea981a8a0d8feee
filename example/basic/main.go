/*
This is a simple program reading n bytes from a file and copying them to the stdout
to illustrate the most basic usage of the schemaflag package.

There are two basic flags defined in the schema: input path (-i) and output length (-n).
The -i flag has to be set, the -n flag is optional and -n-1 reads the whole file, which is also
the behaviour when -n is not passed. -v prints out the version.

	./basic -i/tmp/input.txt -n100
*/

package main

import (
	"io"
	"log"
	"os"

	"github.com/matusvla/schemaflag"
	"github.com/matusvla/schemaflag/example"
)

const template = "v,i*,n#"

func main() {
	// Flag parsing and validation
	s, err := schemaflag.ParseArgs(template)
	if err != nil {
		log.Fatalf("error while parsing the cli parameters: %s", err.Error())
	}
	example.HandleVersion(s)

	inputPath, err := s.GetString('i')
	if err != nil {
		log.Fatalf("error while reading the input path: %s", err.Error())
	}
	if inputPath == "" {
		log.Fatalf("missing mandatory flag %q or its value", "i")
	}
	outputLen, err := s.GetInt('n')
	if err != nil {
		log.Fatalf("error while reading the output length: %s", err.Error())
	}

	// The program "logic"
	f, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("error while opening the input file on path %s: %s", inputPath, err.Error())
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Fatalf("error closing the input file: %s", err.Error())
		}
	}()

	if outputLen <= 0 {
		if _, err := io.Copy(os.Stdout, f); err != nil {
			log.Fatalf("error writing to stdout: %s", err.Error())
		}
		return
	}

	if _, err := io.CopyN(os.Stdout, f, int64(outputLen)); err != nil {
		log.Fatalf("error writing to stdout: %s", err.Error())
	}
}
