package vars

// DerefOrZero reads an optional value.
func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr != nil {
		ret = *ptr
	}
	return
}
