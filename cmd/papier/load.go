package main

import (
	"fmt"
	"strings"

	"github.com/reusee/papier/asm"
	"github.com/reusee/papier/paper"
	"github.com/reusee/papier/papierconfigs"
	"github.com/reusee/papier/programs"
)

// programRef names a registered program with its arguments, or a .paper file.
type programRef struct {
	Name string
	Args []float64
}

func (p programRef) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	parts := []string{p.Name}
	for _, arg := range p.Args {
		parts = append(parts, paper.Number(arg).String())
	}
	return strings.Join(parts, " ")
}

func isAssemblyFile(name string) bool {
	return strings.HasSuffix(name, ".paper")
}

// load builds the referenced program. An empty name selects the default,
// and library files are found by base name.
func load(
	ref programRef,
	defaultProgram papierconfigs.DefaultProgram,
	library papierconfigs.Library,
) ([]paper.Instruction, error) {
	if ref.Name == "" {
		ref = programRef{
			Name: defaultProgram.Name,
			Args: defaultProgram.Args,
		}
	}
	if _, err := programs.Lookup(ref.Name); err != nil && !isAssemblyFile(ref.Name) {
		if path, ok := library.Find(ref.Name); ok {
			ref.Name = path
		}
	}
	if isAssemblyFile(ref.Name) {
		if len(ref.Args) > 0 {
			return nil, fmt.Errorf("%w: %s takes no arguments", programs.ErrArity, ref.Name)
		}
		return asm.ParseFile(ref.Name)
	}
	return programs.Build(ref.Name, ref.Args)
}
