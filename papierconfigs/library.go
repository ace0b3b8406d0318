package papierconfigs

import (
	"path/filepath"
	"strings"

	"github.com/reusee/papier/configs"
)

// Library holds .paper files from the library lists of all config files.
type Library []string

func (Module) Library(
	loader configs.Loader,
) Library {
	var ret Library
	for paths := range configs.All[[]string](loader, "library") {
		ret = append(ret, paths...)
	}
	return ret
}

// Find returns the file whose base name without extension is name.
func (l Library) Find(name string) (string, bool) {
	for _, path := range l {
		if strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) == name {
			return path, true
		}
	}
	return "", false
}
