//go:build !linux

package scan

import "os"

// adviseSequential is a no-op where posix_fadvise is unavailable.
func adviseSequential(_ *os.File) error {
	return nil
}
