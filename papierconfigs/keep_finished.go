package papierconfigs

import (
	"github.com/reusee/papier/cmds"
	"github.com/reusee/papier/configs"
)

// KeepFinished keeps the sheets of finished calls around for inspection.
type KeepFinished bool

var _ configs.Configurable = KeepFinished(false)

func (KeepFinished) ConfigPath() string {
	return "keep_finished"
}

var discardFinished = cmds.Switch("-discard-finished")

func (Module) KeepFinished(
	loader configs.Loader,
) KeepFinished {
	if *discardFinished {
		return false
	}
	keep, ok, err := configs.Lookup[KeepFinished](loader)
	if err != nil {
		panic(err)
	}
	if !ok {
		return true
	}
	return keep
}
