package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable keys into readable names, which is much
// easier on the eyes than "polygon 17" when comparing many shapes in a report.
// Names are generated lazily and memoised, so the same key always gets the
// same name within a run. The memo is never cleared.

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
	used = map[string]struct{}{}
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name for key, which must be comparable. A nil key is "Ø".
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fresh()
	memo[key] = r
	used[r] = struct{}{}
	return r
}

// A name not yet handed out. After a handful of collisions, fall back to a
// numeric suffix rather than keep rolling.
func fresh() string {
	var r string
	for attempt := 0; attempt < 10; attempt++ {
		r = title(petname.Adjective()) + title(petname.Name())
		if _, taken := used[r]; !taken {
			return r
		}
	}
	return fmt.Sprintf("%s%d", r, len(used))
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
