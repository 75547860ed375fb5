package mapper

// MapSlice applies a mapper function to each element of a slice.
// The result is never nil so callers can serialize it as an empty JSON array.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}
