package ui

import (
	"context"
	"errors"
)

// ErrNoScanner is returned by StartScanner when no device is configured.
var ErrNoScanner = errors.New("no barcode scanner configured")

// BarcodeScanner is a device that decodes barcodes and QR labels.
//
// Start begins a scan session and returns once the device is acquired.
// onDecode runs on the scanner's goroutine for every decoded text until
// Stop is called or ctx is done. Stop releases the device; it must not block
// on onDecode and is a no-op when nothing is running.
type BarcodeScanner interface {
	Start(ctx context.Context, onDecode func(text string)) error
	Stop() error
	Scanning() bool
}

// Confirmer asks the user a yes/no question.
type Confirmer func(prompt string) bool
