// Package cli provides the interactive certkeeper command-line client.
//
// It wires configuration, the persisted session cookie, the backend client,
// the services and the console, then serves a REPL. Typical flow: check the
// stored session, log in if needed, and move between the dashboard,
// certificates, renewals, profile, downloads and scanner sections.
//
// Key features:
//   - Login / Register / Logout, with the session surviving restarts
//   - Certificate list, search, upload, delete and re-test requests
//   - Pending alerts as timed notifications
//   - Barcode scanning with verification-link checks
//   - QR, PDF and CSV downloads; admin account creation and sync
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
