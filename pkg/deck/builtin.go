package deck

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultBuiltin is the deck shown when no file is given.
const DefaultBuiltin = "wisdom-village"

// BuiltinNames lists the bundled decks.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// LoadBuiltin parses a bundled deck by name.
func LoadBuiltin(name string) (Deck, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return Deck{}, fmt.Errorf("unknown builtin deck %q (have %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return Parse(data, FormatYAML)
}

// Builtin returns the default bundled deck. The bundled files are authored
// with the binary, so a parse failure is a build defect.
func Builtin() Deck {
	d, err := LoadBuiltin(DefaultBuiltin)
	if err != nil {
		panic(fmt.Sprintf("builtin deck: %v", err))
	}
	return d
}
