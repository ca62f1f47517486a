package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
// An empty spec yields an empty (non-nil) sequence.
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0)

	special := []rune(nil)
	for pos, r := range []rune(spec) {
		switch {

		case r == '<':
			if special != nil {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			special = []rune{}

		case r == '>':
			if special == nil {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			key, err := KeyIdentifierToKey(string(special))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '<%s>' to key: %s", string(special), err.Error())
			}
			result = append(result, key)
			special = nil

		case special != nil:
			if !unicode.IsLetter(r) && r != '-' {
				return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
			}
			special = append(special, r)

		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: r})

		}
	}
	if special != nil {
		return nil, fmt.Errorf("unclosed special context '<%s'", string(special))
	}

	return result, nil
}

// specialKeys maps the identifiers usable in a keyspec's special context
// (between '<' and '>') to keys.
var specialKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"tab":   {Key: tcell.KeyTab},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"pgup":  {Key: tcell.KeyPgUp},
	"pgdn":  {Key: tcell.KeyPgDn},
	"home":  {Key: tcell.KeyHome},
	"end":   {Key: tcell.KeyEnd},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

// specialIdentifiers is the inverse of specialKeys.
// Some control keys are the same key as a named one (e.g. <c-i> and <tab>);
// those are described by the name.
var specialIdentifiers = map[Key]string{}

func init() {
	named := make(map[string]Key, len(specialKeys))
	for identifier, key := range specialKeys {
		named[identifier] = key
	}

	for c := 'a'; c <= 'z'; c++ {
		identifier := "c-" + string(c)
		key := Key{Key: tcell.KeyCtrlA + tcell.Key(c-'a')}
		specialKeys[identifier] = key
		specialIdentifiers[key] = identifier
	}
	for identifier, key := range named {
		specialIdentifiers[key] = identifier
	}
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identfier.
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := specialIdentifiers[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	panic(fmt.Sprintf("undescribable key %s", k.ToDebugString()))
}
