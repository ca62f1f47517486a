package input

import (
	"fmt"
	"sort"

	"github.com/ja-he/alight/internal/control/action"
)

// Keyspec is a key sequence as written in the config, e.g. "gg" or "<c-s>".
type Keyspec string

// Actionspec is the name of an action as written in the config, e.g. "save".
type Actionspec string

// BindActions resolves configured key bindings to the named actions.
// Returns an error naming the first (by keyspec) binding whose action is not
// known.
func BindActions(
	bindings map[Keyspec]Actionspec,
	actions map[Actionspec]action.Action,
) (map[Keyspec]action.Action, error) {
	keyspecs := make([]string, 0, len(bindings))
	for k := range bindings {
		keyspecs = append(keyspecs, string(k))
	}
	sort.Strings(keyspecs)

	result := make(map[Keyspec]action.Action, len(bindings))
	for _, k := range keyspecs {
		name := bindings[Keyspec(k)]
		a, ok := actions[name]
		if !ok {
			return nil, fmt.Errorf("key '%s' bound to unknown action '%s'", k, name)
		}
		result[Keyspec(k)] = a
	}
	return result, nil
}
