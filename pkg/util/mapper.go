package util

// MapSlice applies a converter function to each element of a slice and
// returns the converted slice. A nil input yields an empty, non-nil result.
func MapSlice[T any, R any](items []T, convert func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, convert(item))
	}
	return result
}
