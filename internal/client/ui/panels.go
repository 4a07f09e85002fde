package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
)

func (c *Console) registerPanels() {
	c.router.Register(SectionDashboard, c.dashboardPanel)
	c.router.Register(SectionCertificates, c.certificatesPanel)
	c.router.Register(SectionRenewals, c.renewalsPanel)
	c.router.Register(SectionProfile, c.profilePanel)
}

// drawStatic fills the regions that have no panel.
func (c *Console) drawStatic() {
	c.screen.Replace(SectionDownloads, c.mutedLines(
		"export [file]        save every certificate as CSV",
		"qr <id> [file]       save the QR label of an asset",
		"pdf <name> [file]    save a certificate PDF",
	))
	c.screen.Replace(SectionScan, c.scanHelp())
	c.screen.Replace(SectionAddCertificate, c.mutedLines(
		"upload               fill in the certificate form and send it",
		"A failed upload keeps the form; the next upload starts from it.",
	))
	c.screen.Replace(SectionAdmin, c.mutedLines(
		"adduser              create a client account",
		"sync                 push certificate data to the spreadsheet",
	))
}

func (c *Console) scanHelp() []string {
	return c.mutedLines(
		"scan                 start the barcode reader",
		"stop                 release the reader",
	)
}

func (c *Console) mutedLines(lines ...string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = c.theme.Muted.Render(l)
	}
	return out
}

// panelFailed reports a fetch error without leaving the section: the
// reason goes to a toast and replaces the region's content.
func (c *Console) panelFailed(ctx context.Context, v View, err error) {
	text := c.reportFailure(ctx, v.Section, err)
	v.Commit([]string{c.theme.Danger.Render(text)})
}

// reportFailure logs err and raises an error toast; it returns the toast text.
func (c *Console) reportFailure(ctx context.Context, id Section, err error) string {
	c.log.Error(ctx, "panel load failed", "section", id, "error", err)

	text := Message(err, fmt.Sprintf("Could not load %s.", strings.ToLower(id.Title())))
	if errors.Is(err, client.ErrUnauthorized) {
		text = sessionExpired
	}
	c.toasts.Notify(SeverityError, text)
	return text
}

const sessionExpired = "Session expired. Please logout and login again."

func (c *Console) dashboardPanel(ctx context.Context, v View) {
	stats, err := c.insights.Dashboard(ctx)
	if err != nil {
		c.panelFailed(ctx, v, err)
		return
	}
	v.Commit(DashboardView(stats).Lines(c.theme))
}

func (c *Console) certificatesPanel(ctx context.Context, v View) {
	certs, err := c.certs.List(ctx)
	if err != nil {
		c.panelFailed(ctx, v, err)
		return
	}
	v.Commit(RenderCertificates(CertificateCards(certs, c.links), c.theme))
}

func (c *Console) renewalsPanel(ctx context.Context, v View) {
	if !v.Commit([]string{c.theme.Muted.Render(loadingRenewals)}) {
		return
	}

	items, err := c.renewals.List(ctx)
	if err != nil {
		c.panelFailed(ctx, v, err)
		return
	}
	v.Commit(RenderRenewals(RenewalCards(items), c.theme))
}

// profilePanel renders the summary first, then fetches the chart series and
// redraws with both charts rebuilt from scratch.
func (c *Console) profilePanel(ctx context.Context, v View) {
	p, err := c.insights.Profile(ctx)
	if err != nil {
		c.panelFailed(ctx, v, err)
		return
	}
	summary := ProfileView(p).Lines(c.theme)
	if !v.Commit(summary) || c.charts == nil {
		return
	}

	data, err := c.insights.Charts(ctx)
	if err != nil {
		c.reportFailure(ctx, v.Section, err)
		return
	}

	for _, old := range c.session.SwapCharts(nil, nil) {
		old.Destroy()
	}

	status, err := c.charts.Render(ChartSpec{
		Kind:   ChartDoughnut,
		Title:  "Certificate status",
		Labels: data.StatusLabels,
		Values: data.StatusValues,
	})
	if err != nil {
		c.log.Error(ctx, "render status chart", "error", err)
		return
	}
	byType, err := c.charts.Render(ChartSpec{
		Kind:   ChartBar,
		Title:  "Assets by type",
		Labels: data.TypeLabels,
		Values: data.TypeValues,
	})
	if err != nil {
		status.Destroy()
		c.log.Error(ctx, "render type chart", "error", err)
		return
	}

	if !v.Current() {
		status.Destroy()
		byType.Destroy()
		return
	}
	for _, old := range c.session.SwapCharts(status, byType) {
		old.Destroy()
	}

	lines := append([]string{}, summary...)
	lines = append(lines, "")
	lines = append(lines, status.Lines()...)
	lines = append(lines, "")
	lines = append(lines, byType.Lines()...)
	v.Commit(lines)
}
