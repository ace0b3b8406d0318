package cmds

import "io"

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func MustExecute(args []string) {
	GlobalExecutor.MustExecute(args)
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}

func WriteUsage(w io.Writer) {
	GlobalExecutor.WriteUsage(w)
}
