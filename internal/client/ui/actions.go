package ui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/common"
)

// RequestRetest asks for confirmation, then files a re-test request. On
// success the renewals and certificates panels are re-fetched.
func (c *Console) RequestRetest(ctx context.Context, assetID string) bool {
	if common.IsBlank(assetID) {
		c.toasts.Notify(SeverityError, Message(common.ErrMissingAssetID, ""))
		return false
	}
	if !c.confirm(fmt.Sprintf("Request a re-test for asset %s?", assetID)) {
		return false
	}

	if err := c.renewals.RequestRetest(ctx, assetID); err != nil {
		c.log.Error(ctx, "request retest", "asset", assetID, "error", err)
		c.toasts.Notify(SeverityError, Message(err, "Re-test request failed."))
		return false
	}

	c.toasts.Notify(SeveritySuccess, fmt.Sprintf("Re-test requested for %s.", assetID))
	c.router.Refresh(ctx, SectionRenewals)
	c.router.Refresh(ctx, SectionCertificates)
	return true
}

// DeleteCertificate asks for confirmation, deletes, and re-fetches the
// certificate list once whatever the outcome.
func (c *Console) DeleteCertificate(ctx context.Context, assetID string) bool {
	if common.IsBlank(assetID) {
		c.toasts.Notify(SeverityError, Message(common.ErrMissingAssetID, ""))
		return false
	}
	if !c.confirm(fmt.Sprintf("Delete certificate %s?", assetID)) {
		return false
	}

	err := c.certs.Delete(ctx, assetID)
	if err != nil {
		c.log.Error(ctx, "delete certificate", "asset", assetID, "error", err)
		c.toasts.Notify(SeverityError, Message(err, "Delete failed."))
	} else {
		c.toasts.Notify(SeveritySuccess, fmt.Sprintf("Certificate %s deleted.", assetID))
	}

	c.router.Refresh(ctx, SectionCertificates)
	return err == nil
}

// UploadCertificate sends the form. The form is kept as a draft until the
// backend accepts it.
func (c *Console) UploadCertificate(ctx context.Context, form models.UploadForm) error {
	c.session.SetDraft(form)

	if err := c.certs.Add(ctx, form); err != nil {
		c.log.Error(ctx, "upload certificate", "asset", form.AssetID, "error", err)
		c.toasts.Notify(SeverityError, Message(err, "Error saving certificate."))
		return err
	}

	c.session.ClearDraft()
	c.toasts.Notify(SeveritySuccess, "Saved!")
	c.router.ShowSection(ctx, SectionCertificates)
	return nil
}

// SearchAsset shows a single certificate in the certificates region.
func (c *Console) SearchAsset(ctx context.Context, query string) {
	q := strings.TrimSpace(query)
	if q == "" {
		c.toasts.Notify(SeverityError, Message(common.ErrEmptyQuery, ""))
		return
	}

	v := c.router.Display(ctx, SectionCertificates)
	cert, err := c.certs.Search(ctx, q)
	if err != nil {
		c.panelFailed(ctx, v, err)
		return
	}

	hint := c.theme.Muted.Render(restoreHint)
	if cert == nil {
		v.Commit([]string{
			c.theme.Muted.Render(fmt.Sprintf("No certificate found for asset %s.", q)),
			hint,
		})
		return
	}

	card := CertificateCardOf(*cert, c.links)
	card.Highlighted = true
	v.Commit(append(card.Lines(c.theme), hint))
}

// RestoreCertificates leaves search results for the full list.
func (c *Console) RestoreCertificates(ctx context.Context) {
	c.router.ShowSection(ctx, SectionCertificates)
}

func (c *Console) ShowSection(ctx context.Context, id Section) {
	c.router.ShowSection(ctx, id)
}

// StartScanner opens the scan section and starts the reader. The first
// decoded label ends the session: verification links are checked against
// the backend, anything else is shown as read.
func (c *Console) StartScanner(ctx context.Context) error {
	if c.router.Active() != SectionScan {
		c.router.ShowSection(ctx, SectionScan)
	}
	v := c.router.CurrentView(SectionScan)

	err := c.router.StartScanner(ctx, func(text string) {
		c.handleDecode(ctx, v, text)
	})
	if err != nil {
		c.log.Error(ctx, "start scanner", "error", err)
		c.toasts.Notify(SeverityError, fmt.Sprintf("Scanner error: %v", err))
		return err
	}

	c.screen.Print(c.theme.Muted.Render("Scanning... present a label to the reader."))
	return nil
}

func (c *Console) StopScanner(ctx context.Context) error {
	if err := c.router.StopScanner(ctx); err != nil {
		c.log.Warn(ctx, "stop scanner", "error", err)
		return err
	}
	return nil
}

func (c *Console) handleDecode(ctx context.Context, v View, text string) {
	c.log.Info(ctx, "barcode decoded", "text", text)

	result := c.theme.Label.Render("Scanned: ") + text
	if isWebLink(text) {
		ok, err := c.certs.Verify(ctx, text)
		switch {
		case err != nil:
			c.log.Error(ctx, "verify scanned link", "error", err)
			result = c.theme.Danger.Render("Verification failed: ") + Message(err, err.Error())
		case ok:
			result = c.theme.Valid.Render("VERIFIED: ") + text
		default:
			result = c.theme.Danger.Render("NOT FOUND: ") + text
		}
	}

	v.Commit(append(c.scanHelp(), "", result))
}

func isWebLink(text string) bool {
	u, err := url.Parse(strings.TrimSpace(text))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// CreateUser registers a client account on behalf of the admin.
func (c *Console) CreateUser(ctx context.Context, username string, password []byte) error {
	if err := c.admin.CreateUser(ctx, username, password); err != nil {
		c.log.Error(ctx, "create user", "user", username, "error", err)
		c.toasts.Notify(SeverityError, Message(err, connectionFailed))
		return err
	}
	c.toasts.Notify(SeveritySuccess, fmt.Sprintf("Account for %q has been created.", username))
	return nil
}

func (c *Console) SyncData(ctx context.Context) error {
	if err := c.admin.Sync(ctx); err != nil {
		c.log.Error(ctx, "sync data", "error", err)
		c.toasts.Notify(SeverityError, Message(err, "Sync failed."))
		return err
	}
	c.toasts.Notify(SeveritySuccess, "Spreadsheet updated.")
	return nil
}

func (c *Console) ExportCSV(ctx context.Context, path string) error {
	return c.save(ctx, path, "export csv", func() error {
		return c.certs.ExportCSV(ctx, path)
	})
}

func (c *Console) SaveQR(ctx context.Context, assetID, path string) error {
	return c.save(ctx, path, "save qr code", func() error {
		return c.certs.SaveQRCode(ctx, assetID, path)
	})
}

func (c *Console) DownloadPDF(ctx context.Context, name, path string) error {
	return c.save(ctx, path, "download pdf", func() error {
		return c.certs.SavePDF(ctx, name, path)
	})
}

func (c *Console) save(ctx context.Context, path, what string, fn func() error) error {
	if err := fn(); err != nil {
		c.log.Error(ctx, what, "path", path, "error", err)
		c.toasts.Notify(SeverityError, Message(err, "Download failed."))
		return err
	}
	c.toasts.Notify(SeveritySuccess, "Saved "+path)
	return nil
}
