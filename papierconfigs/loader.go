package papierconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/papier/cmds"
	"github.com/reusee/papier/configs"
	"github.com/reusee/papier/logs"
)

//go:embed schema.cue
var Schema string

var configFiles = cmds.Collect[string]("-config")

var filenames = []string{
	"papier.cue",
	".papier.cue",
}

// ConfigPaths lists existing config files, most specific first: files given by
// -config, then the working directory, the user config directory and /etc.
func ConfigPaths() []string {
	paths := append([]string(nil), *configFiles...)

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "papier"))
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := ConfigPaths()
	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return configs.NewLoader(paths, Schema)
}
