//go:build unix

package scanner

import (
	"io"
	"os"
	"syscall"
)

// openDevice opens path non-blocking so the file is registered with the
// runtime poller and Close wakes a goroutine blocked in Read.
func openDevice(path string) (io.ReadCloser, error) {
	return os.OpenFile(path, os.O_RDONLY|syscall.O_NONBLOCK, 0)
}
