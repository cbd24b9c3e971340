package splitfft

import "testing"

func TestSizeError(t *testing.T) {
	e := &SizeError{Context: "FFTSplit", Length: 17}
	expect := "splitfft: FFTSplit: length 17 is not a power of two"
	if got := e.Error(); got != expect {
		t.Errorf("SizeError.Error(), expected %q, got %q", expect, got)
	}
}

func TestBufferMismatchError(t *testing.T) {
	e := &BufferMismatchError{Context: "FFTSplit", LenA: 8, LenB: 9, NameA: "r", NameB: "im"}
	expect := "splitfft: FFTSplit: len(r)=8 != len(im)=9"
	if got := e.Error(); got != expect {
		t.Errorf("BufferMismatchError.Error(), expected %q, got %q", expect, got)
	}
}

func TestDepthExceededError(t *testing.T) {
	e := &DepthExceededError{Context: "FFTSplit", NeededDepth: 19, MaxDepth: MaxTableDepth}
	expect := "splitfft: FFTSplit: needs table depth 19, exceeds MaxTableDepth=18"
	if got := e.Error(); got != expect {
		t.Errorf("DepthExceededError.Error(), expected %q, got %q", expect, got)
	}
}

func TestMinimumLengthError(t *testing.T) {
	e := &MinimumLengthError{Context: "RealFFTSplit", Length: 4, Minimum: 16}
	expect := "splitfft: RealFFTSplit: length 4 is below the minimum supported length 16"
	if got := e.Error(); got != expect {
		t.Errorf("MinimumLengthError.Error(), expected %q, got %q", expect, got)
	}
}

func TestUninitializedError(t *testing.T) {
	e := &UninitializedError{Context: "FFTSplit"}
	expect := "splitfft: FFTSplit: Initialize must be called before any transform"
	if got := e.Error(); got != expect {
		t.Errorf("UninitializedError.Error(), expected %q, got %q", expect, got)
	}
}

func checkIsSizeError(t *testing.T, context string, err error) {
	if err == nil {
		t.Errorf("%s didn't return error", context)
		return
	}
	if _, ok := err.(*SizeError); !ok {
		t.Errorf("%s returned incorrect error type: %v", context, err)
	}
}
