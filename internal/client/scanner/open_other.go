//go:build !unix

package scanner

import (
	"io"
	"os"
)

func openDevice(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
