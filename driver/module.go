package driver

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/papier/logs"
	"github.com/reusee/papier/paper"
	"github.com/reusee/papier/papierconfigs"
)

type Module struct {
	dscope.Module
}

type NewRunner func(m *paper.Machine) *Runner

func (Module) NewRunner(
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxSteps papierconfigs.MaxSteps,
	interval papierconfigs.FreeRunInterval,
) NewRunner {
	return func(m *paper.Machine) *Runner {
		return &Runner{
			Machine:  m,
			Logger:   logger,
			NewSpan:  newSpan,
			MaxSteps: int(maxSteps),
			Interval: time.Duration(interval),
		}
	}
}

// MachineOptions derives machine options from configuration.
type MachineOptions paper.Options

func (Module) MachineOptions(
	keep papierconfigs.KeepFinished,
) MachineOptions {
	return MachineOptions{
		DiscardFinished: !bool(keep),
	}
}
