package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arena indices into random readable names. It flagrantly leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually using it. "HalfEdge 17" and "HalfEdge 71" are easy to mix up in a
// long dump; "BraveOtter" and "TidyHeron" are not.

type key struct {
	kind  string
	index int
}

var memo map[key]string

func init() {
	memo = make(map[key]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name for element index of the given kind. Negative indices are the "none"
// sentinel.
func Name(kind string, index int) string {
	if index < 0 {
		return "Ø"
	}

	k := key{kind, index}
	if r, ok := memo[k]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[k] = r
	return r
}
