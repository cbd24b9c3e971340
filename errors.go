package splitfft

import "fmt"

// SizeError reports that a buffer length was not a power of two, where
// the API requires one.
type SizeError struct {
	Context string
	Length  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("splitfft: %s: length %d is not a power of two", e.Context, e.Length)
}

// BufferMismatchError reports that two buffers that must agree in
// length did not.
type BufferMismatchError struct {
	Context  string
	LenA     int
	LenB     int
	NameA    string
	NameB    string
}

func (e *BufferMismatchError) Error() string {
	return fmt.Sprintf("splitfft: %s: len(%s)=%d != len(%s)=%d", e.Context, e.NameA, e.LenA, e.NameB, e.LenB)
}

// DepthExceededError reports that a transform needs more table depth
// than MaxTableDepth provides.
type DepthExceededError struct {
	Context      string
	NeededDepth  int
	MaxDepth     int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("splitfft: %s: needs table depth %d, exceeds MaxTableDepth=%d", e.Context, e.NeededDepth, e.MaxDepth)
}

// MinimumLengthError reports that a real-valued transform's length fell
// below the supported minimum.
type MinimumLengthError struct {
	Context string
	Length  int
	Minimum int
}

func (e *MinimumLengthError) Error() string {
	return fmt.Sprintf("splitfft: %s: length %d is below the minimum supported length %d", e.Context, e.Length, e.Minimum)
}

// UninitializedError reports that a transform was attempted before
// Initialize was called.
type UninitializedError struct {
	Context string
}

func (e *UninitializedError) Error() string {
	return fmt.Sprintf("splitfft: %s: Initialize must be called before any transform", e.Context)
}
