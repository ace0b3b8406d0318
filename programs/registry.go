package programs

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/reusee/papier/paper"
)

// Program is a named, ready to run instruction list builder.
type Program struct {
	Name        string
	Description string
	// Arity is the number of numeric arguments Build expects, -1 for any.
	Arity int
	Build func(args []float64) ([]paper.Instruction, error)
}

var ErrUnknownProgram = errors.New("unknown program")

var ErrArity = errors.New("wrong number of arguments")

var registry = map[string]Program{}

func register(p Program) {
	if _, ok := registry[p.Name]; ok {
		panic(fmt.Sprintf("duplicated program: %s", p.Name))
	}
	registry[p.Name] = p
}

func numbers(args []float64) []paper.Value {
	ret := make([]paper.Value, 0, len(args))
	for _, arg := range args {
		ret = append(ret, paper.Number(arg))
	}
	return ret
}

func init() {
	register(Program{
		Name:        "gcd",
		Description: "greatest common divisor with the Mod instruction",
		Arity:       2,
		Build: func(args []float64) ([]paper.Instruction, error) {
			return GCDMain(args[0], args[1]), nil
		},
	})
	register(Program{
		Name:        "gcd-mod",
		Description: "greatest common divisor, remainders computed on nested sheets",
		Arity:       2,
		Build: func(args []float64) ([]paper.Instruction, error) {
			return CallStatic(GCDWithMod(), numbers(args), cpf)
		},
	})
	register(Program{
		Name:        "modulo",
		Description: "remainder by repeated subtraction",
		Arity:       2,
		Build: func(args []float64) ([]paper.Instruction, error) {
			return CallStatic(Modulo(), numbers(args), cpf)
		},
	})
	register(Program{
		Name:        "fibonacci",
		Description: "fibonacci numbers until a term overflows its field",
		Arity:       0,
		Build: func([]float64) ([]paper.Instruction, error) {
			return Fibonacci(), nil
		},
	})
	register(Program{
		Name:        "pascal",
		Description: "pascal's triangle, one row per breakpoint",
		Arity:       0,
		Build: func([]float64) ([]paper.Instruction, error) {
			return PascalsTriangle(), nil
		},
	})
	register(Program{
		Name:        "sort",
		Description: "odd-even transposition sort, one pass per breakpoint",
		Arity:       -1,
		Build: func(args []float64) ([]paper.Instruction, error) {
			return SortMain(args), nil
		},
	})
}

// Names returns all registered program names in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the named program. Unknown names are reported with the
// closest registered names.
func Lookup(name string) (Program, error) {
	if p, ok := registry[name]; ok {
		return p, nil
	}
	suggestions := Suggest(name)
	if len(suggestions) > 0 {
		return Program{}, fmt.Errorf("%w: %s, did you mean %s", ErrUnknownProgram, name, strings.Join(suggestions, ", "))
	}
	return Program{}, fmt.Errorf("%w: %s", ErrUnknownProgram, name)
}

// Suggest returns registered names fuzzily matching name, best first.
func Suggest(name string) []string {
	ranks := fuzzy.RankFindFold(name, Names())
	sort.Sort(ranks)
	ret := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		ret = append(ret, rank.Target)
	}
	return ret
}

// Build looks up name and builds it with args.
func Build(name string, args []float64) ([]paper.Instruction, error) {
	p, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if p.Arity >= 0 && len(args) != p.Arity {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, name, p.Arity, len(args))
	}
	return p.Build(args)
}
