package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/certkeeper/internal/client/ui"
	"github.com/dmitrijs2005/certkeeper/internal/common"
)

var (
	errUnknownSection = errors.New("unknown section")
	errAdminOnly      = errors.New("admin only")
	errNoNotification = errors.New("no such notification")
)

const defaultExportFile = "certificates.csv"

// Show switches the application shell to the named section.
func (a *App) Show(ctx context.Context, section string) error {
	id := ui.Section(section)
	if !id.Valid() {
		names := make([]string, 0, len(ui.Sections()))
		for _, s := range ui.Sections() {
			names = append(names, string(s))
		}
		printlnFn(fmt.Sprintf("Unknown section %q. Sections: %s", section, strings.Join(names, ", ")))
		return errUnknownSection
	}
	if id == ui.SectionAdmin && !a.isAdmin() {
		printlnFn("Admin only")
		return errAdminOnly
	}
	a.console.ShowSection(ctx, id)
	return nil
}

func (a *App) Search(ctx context.Context, assetID string) error {
	a.console.SearchAsset(ctx, assetID)
	return nil
}

func (a *App) All(ctx context.Context) error {
	a.console.RestoreCertificates(ctx)
	return nil
}

func (a *App) Delete(ctx context.Context, assetID string) error {
	a.console.DeleteCertificate(ctx, assetID)
	return nil
}

func (a *App) Retest(ctx context.Context, assetID string) error {
	a.console.RequestRetest(ctx, assetID)
	return nil
}

// Upload opens the add-certificate form and prompts for every field. Values
// of a previously rejected upload are offered as defaults.
func (a *App) Upload(ctx context.Context) error {
	a.console.ShowSection(ctx, ui.SectionAddCertificate)

	form, _ := a.console.Draft()
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Customer name", &form.Name},
		{"Asset ID", &form.AssetID},
		{"Form type (e.g. LOLER)", &form.FormType},
		{"Equipment type", &form.Equipment},
		{"Site", &form.Site},
		{"Inspection date (YYYY-MM-DD)", &form.InspectionDate},
		{"Expiry date (YYYY-MM-DD)", &form.ExpiryDate},
		{"PDF file (optional)", &form.PDFPath},
	}
	for _, f := range fields {
		v, err := getTextDefault(a.reader, f.prompt, *f.value, a.out)
		if err != nil {
			return err
		}
		*f.value = v
	}

	return a.console.UploadCertificate(ctx, form)
}

// Alerts lists the notifications still on screen.
func (a *App) Alerts(ctx context.Context) error {
	toasts := a.console.Toasts()
	if len(toasts) == 0 {
		printlnFn("No notifications.")
		return nil
	}
	for _, t := range toasts {
		line := fmt.Sprintf("%d. [%s] %s", t.Seq, t.Severity, t.Message)
		if t.AssetID != "" {
			line += fmt.Sprintf(" (asset %s)", t.AssetID)
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) Dismiss(ctx context.Context, seq string) error {
	n, err := strconv.Atoi(seq)
	if err != nil {
		printlnFn("Usage: dismiss <n>")
		return err
	}
	if !a.console.Dismiss(n) {
		printlnFn(fmt.Sprintf("No notification #%d.", n))
		return errNoNotification
	}
	return nil
}

func (a *App) Scan(ctx context.Context) error {
	return a.console.StartScanner(ctx)
}

func (a *App) Stop(ctx context.Context) error {
	if !a.console.Scanning() {
		printlnFn("Scanner is not running.")
		return nil
	}
	if err := a.console.StopScanner(ctx); err != nil {
		printlnFn(fmt.Sprintf("Could not stop scanner: %v", err))
		return err
	}
	printlnFn("Scanner stopped.")
	return nil
}

func (a *App) SaveQR(ctx context.Context, assetID, path string) error {
	if path == "" {
		path = assetID + "_qr.png"
	}
	return a.console.SaveQR(ctx, assetID, path)
}

func (a *App) SavePDF(ctx context.Context, name, path string) error {
	if path == "" {
		path = filepath.Base(name)
	}
	return a.console.DownloadPDF(ctx, name, path)
}

func (a *App) Export(ctx context.Context, path string) error {
	if path == "" {
		path = defaultExportFile
	}
	return a.console.ExportCSV(ctx, path)
}

// AddUser creates a client account on behalf of the admin.
func (a *App) AddUser(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter new user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.console.CreateUser(ctx, userName, password)
}

func (a *App) Sync(ctx context.Context) error {
	return a.console.SyncData(ctx)
}
