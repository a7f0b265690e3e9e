//go:build !amd64 && !arm64

package hwy

func init() {
	selectLevel(DispatchScalar)
}

// HasFMA always returns false on this architecture.
func HasFMA() bool {
	return false
}
