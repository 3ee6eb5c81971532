package functools

import "fmt"

// Map applies fn to every element, preserving order. A nil slice maps to nil.
func Map[T any, R any](slice []T, fn func(T) R) []R {
	if slice == nil {
		return nil
	}
	result := make([]R, len(slice))
	for i, v := range slice {
		result[i] = fn(v)
	}
	return result
}

// MapWithError transforms elements with error-returning function
// Use this when transformation can fail (e.g., lookups, validation)
func MapWithError[T any, R any](slice []T, fn func(T) (R, error)) ([]R, error) {
	if slice == nil {
		return nil, nil
	}
	result := make([]R, 0, len(slice))
	for i, v := range slice {
		r, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("map failed at index %d: %w", i, err)
		}
		result = append(result, r)
	}
	return result, nil
}
