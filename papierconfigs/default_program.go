package papierconfigs

import (
	"github.com/reusee/papier/configs"
)

// DefaultProgram is run when the command line names no program.
type DefaultProgram struct {
	Name string
	Args []float64
}

func (Module) DefaultProgram(
	loader configs.Loader,
) DefaultProgram {
	name := configs.First[string](loader, "default_program")
	if name == "" {
		return DefaultProgram{
			Name: "gcd-mod",
			Args: []float64{98765432, 1234567},
		}
	}
	return DefaultProgram{
		Name: name,
		Args: configs.First[[]float64](loader, "default_args"),
	}
}
