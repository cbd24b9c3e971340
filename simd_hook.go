package splitfft

import "github.com/cooleyfox/splitfft/internal/simdkernel"

func init() {
	if simdkernel.Stage != nil {
		accelStage = simdkernel.Stage
	}
}
