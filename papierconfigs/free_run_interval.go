package papierconfigs

import (
	"fmt"
	"time"

	"github.com/reusee/papier/cmds"
	"github.com/reusee/papier/configs"
	"github.com/reusee/papier/vars"
)

// FreeRunInterval is the pause between steps while free running.
type FreeRunInterval time.Duration

const DefaultFreeRunInterval = FreeRunInterval(50 * time.Millisecond)

var intervalFlag = cmds.Var[string]("-interval")

func (Module) FreeRunInterval(
	loader configs.Loader,
) FreeRunInterval {
	str := vars.FirstNonZero(
		*intervalFlag,
		configs.First[string](loader, "free_run_interval"),
	)
	if str == "" {
		return DefaultFreeRunInterval
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		panic(fmt.Errorf("free run interval: %w", err))
	}
	if d < 0 {
		panic(fmt.Errorf("free run interval: negative duration %s", str))
	}
	return FreeRunInterval(d)
}
