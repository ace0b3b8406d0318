package configs

import (
	"errors"
)

// First decodes the value at path from the first file that sets it. A
// missing value gives the zero value, other failures panic.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if err == nil || errors.Is(err, ErrValueNotFound) {
		return
	}
	panic(err)
}
