package maps

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

func builtinLoader() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// Embedded directory always exists
		panic(err)
	}
	return newFSLoader(sub, "builtin")
}

// Builtins returns every embedded map sorted by ID.
func Builtins() ([]Map, error) {
	return builtinLoader().LoadAll()
}

// Builtin returns the embedded map for a variant.
func Builtin(variantID string) (Map, error) {
	all, err := Builtins()
	if err != nil {
		return Map{}, err
	}
	for _, m := range all {
		if m.Variant == variantID {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("maps: no built-in map for variant %q", variantID)
}
