// Package utils holds small helpers shared by tests.
package utils

func Ptr[T any](v T) *T {
	return &v
}
