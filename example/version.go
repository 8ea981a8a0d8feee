package example

import (
	"fmt"
	"os"

	"github.com/matusvla/schemaflag"
)

// version variable set by LDFLAGS, see Makefile:

var BuildVersion string

// VersionKey is the bool flag reserved for the version printout, add it to the schema template as "v".
const VersionKey = 'v'

// HandleVersion prints out the BuildVersion and exits if the -v flag has been passed.
func HandleVersion(s *schemaflag.Schema) {
	if printVersion, err := s.GetBool(VersionKey); err == nil && printVersion {
		fmt.Printf("%v\n", BuildVersion)
		os.Exit(0)
	}
}
