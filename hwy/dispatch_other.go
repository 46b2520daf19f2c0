//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures always run the pure Go kernels.
	setScalarMode()
}

// HasAVX returns false on non-x86 platforms.
func HasAVX() bool {
	return false
}

// HasSVE returns false on non-ARM64 platforms (SVE is ARM-specific).
func HasSVE() bool {
	return false
}
