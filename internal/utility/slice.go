package utility

// Contains kiểm tra phần tử có trong slice hay không.
func Contains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}
