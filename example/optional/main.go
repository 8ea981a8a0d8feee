/*
This program shows how a shared schema can be compiled once and how the accessor errors
can be used for the flags that are optional for the program logic.
*/

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/matusvla/schemaflag"
)

var schema = schemaflag.MustCompile("u*,a")

func main() {
	s, err := schema.Clone().Match(os.Args[1:])
	if err != nil {
		log.Fatalf("error while parsing the cli parameters: %s", err.Error())
	}

	username, err := s.GetString('u')
	if err != nil {
		log.Fatalf("error while reading the username: %s", err.Error())
	}
	// validation of username
	if strings.Contains(username, " ") {
		log.Fatalf("username cannot contain whitespaces")
	}

	// the program might be built with a schema without the -a flag
	isAdmin, err := s.GetBool('a')
	if errors.Is(err, schemaflag.ErrUnknownArgument) {
		isAdmin = false
	} else if err != nil {
		log.Fatalf("error while reading the admin flag: %s", err.Error())
	}

	// The program "logic"
	privilegesClause := "without admin privileges"
	if isAdmin || username == "admin" {
		privilegesClause = "with admin privileges"
	}
	fmt.Printf("Running the program as a user %q %s\n", username, privilegesClause)
}
