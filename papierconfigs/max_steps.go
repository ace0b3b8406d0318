package papierconfigs

import (
	"github.com/reusee/papier/cmds"
	"github.com/reusee/papier/configs"
)

// MaxSteps bounds the steps of one run. Zero means unlimited.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigPath() string {
	return "max_steps"
}

const DefaultMaxSteps = 1_000_000

var maxStepsFlag = cmds.Var[*int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	if *maxStepsFlag != nil {
		return MaxSteps(**maxStepsFlag)
	}
	n, ok, err := configs.Lookup[MaxSteps](loader)
	if err != nil {
		panic(err)
	}
	if ok {
		return n
	}
	return DefaultMaxSteps
}
