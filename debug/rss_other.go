//go:build !windows

package debug

// processRSS is only implemented on Windows.
func processRSS() (uint64, bool) { return 0, false }
