package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts handles into random readable names. It flagrantly leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually using it. This is helpful for telling apart the small integer
// handles of a mesh when debugging: "edge 12" and "edge 21" blur together,
// WateryHeron and BouncyMoose do not.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for the given kind/id pair. Negative
// ids are the empty handles.
func Name(kind string, id int) string {
	if id < 0 {
		return "Ø"
	}
	key := fmt.Sprintf("%s/%d", kind, id)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
