package vars

// FirstNonZero returns the first value that is not the zero value, for
// layering flags over config over defaults.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}
