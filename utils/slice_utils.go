package utils

// GetOrString returns the i-th element of slice, or `or` when it is out of range
func GetOrString(slice []string, i int, or string) string {
	if i >= 0 && len(slice)-1 >= i {
		return slice[i]
	}
	return or
}

// IndexOf position of s in slice or -1
func IndexOf(slice []string, s string) int {
	for i, v := range slice {
		if v == s {
			return i
		}
	}
	return -1
}
