package configs

import "errors"

// Configurable is a typed config value stored at a fixed cue path.
type Configurable interface {
	ConfigPath() string
}

// Lookup decodes the first value at T's path. ok is false when no file sets it.
func Lookup[T Configurable](loader Loader) (ret T, ok bool, err error) {
	err = loader.AssignFirst(ret.ConfigPath(), &ret)
	if errors.Is(err, ErrValueNotFound) {
		return ret, false, nil
	}
	if err != nil {
		return ret, false, err
	}
	return ret, true, nil
}
