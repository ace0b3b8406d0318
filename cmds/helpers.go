package cmds

// Var defines name taking one argument into the returned value, and
// name followed by a dot resetting it to zero.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name setting the returned value and !name clearing it.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines name appending one argument per use, and name followed
// by a dot emptying the list.
func Collect[T any](name string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}))
	Define(name+".", Func(func() {
		values = nil
	}))
	return &values
}
