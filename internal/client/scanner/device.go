// Package scanner reads barcode and QR labels from a keyboard-wedge or
// serial reader exposed as a character device: every decoded label arrives
// as one line of text.
package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/certkeeper/internal/client/ui"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
)

var ErrAlreadyScanning = errors.New("scanner already running")

// maxLabel bounds a single decoded line.
const maxLabel = 4096

// Device is a ui.BarcodeScanner over a line-oriented device file.
//
// Stop closes the device to interrupt a pending read. That only works for
// descriptors the runtime poller can wait on, so on unix the device is
// opened non-blocking (ttys, FIFOs and character devices qualify). Regular
// files and non-unix platforms keep a blocking read: a reader parked there
// exits on the next line or EOF instead of on Stop.
type Device struct {
	path string
	open func(path string) (io.ReadCloser, error)
	log  logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	run    uint64
}

func NewDevice(path string, log logging.Logger) *Device {
	if log == nil {
		log = logging.Nop()
	}
	return &Device{path: path, open: openDevice, log: log}
}

// Start opens the device and delivers every non-blank line to onDecode
// until Stop is called, ctx is done or the device reaches EOF.
func (d *Device) Start(ctx context.Context, onDecode func(text string)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return ErrAlreadyScanning
	}

	rc, err := d.open(d.path)
	if err != nil {
		return fmt.Errorf("open scanner %s: %w", d.path, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.run++
	run := d.run

	// Closing the device is what unblocks a pending read.
	go func() {
		<-runCtx.Done()
		if err := rc.Close(); err != nil {
			d.log.Debug(ctx, "close scanner", "path", d.path, "error", err)
		}
	}()

	go d.read(runCtx, run, rc, onDecode)

	d.log.Info(ctx, "scanner started", "path", d.path)
	return nil
}

func (d *Device) read(ctx context.Context, run uint64, r io.Reader, onDecode func(string)) {
	defer d.finish(run)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), maxLabel)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		onDecode(text)
	}
	if err := sc.Err(); err != nil && ctx.Err() == nil {
		d.log.Warn(ctx, "scanner read", "path", d.path, "error", err)
	}
}

// finish releases the run if it is still the current one.
func (d *Device) finish(run uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.run == run && d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Stop releases the device. It does not wait for the reader goroutine.
func (d *Device) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel == nil {
		return nil
	}
	d.cancel()
	d.cancel = nil
	return nil
}

func (d *Device) Scanning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

var _ ui.BarcodeScanner = (*Device)(nil)
