package ui

import (
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
)

// DashboardVM is the four dashboard slots, already formatted.
type DashboardVM struct {
	Total   string
	Valid   string
	Soon    string
	Expired string
}

func DashboardView(stats *models.DashboardStats) DashboardVM {
	if stats == nil {
		stats = &models.DashboardStats{}
	}
	return DashboardVM{
		Total:   slot(stats.Total),
		Valid:   slot(stats.Valid),
		Soon:    slot(stats.Soon),
		Expired: slot(stats.Expired),
	}
}

func (vm DashboardVM) Lines(th Theme) []string {
	return box(th.Card, []string{
		th.Label.Render("Total assets    ") + vm.Total,
		th.Valid.Render("Valid           ") + vm.Valid,
		th.Warning.Render("Expiring soon   ") + vm.Soon,
		th.Danger.Render("Expired         ") + vm.Expired,
	})
}

// CertificateCard is the display form of one certificate.
type CertificateCard struct {
	ID          string
	Type        string
	Site        string
	Status      string
	FormType    string
	Expiry      string
	QRURL       string
	PDFURL      string
	Highlighted bool
}

func CertificateCardOf(c models.Certificate, links client.Links) CertificateCard {
	card := CertificateCard{
		ID:       c.ID,
		Type:     c.Type,
		Site:     siteOrNA(c.Site),
		Status:   c.Status,
		FormType: c.FormType,
		Expiry:   c.Expiry,
	}
	if links != nil {
		card.QRURL = links.QRURL(c.ID)
		if c.PDF != "" {
			card.PDFURL = links.PDFURL(c.PDF)
		}
	}
	return card
}

func CertificateCards(certs []models.Certificate, links client.Links) []CertificateCard {
	cards := make([]CertificateCard, 0, len(certs))
	for _, c := range certs {
		cards = append(cards, CertificateCardOf(c, links))
	}
	return cards
}

const (
	emptyCertificates = "No certificates found."
	emptyRenewals     = "No upcoming renewals found."
	loadingRenewals   = "Loading alerts..."
	restoreHint       = "Type 'all' to show every certificate."
)

func RenderCertificates(cards []CertificateCard, th Theme) []string {
	if len(cards) == 0 {
		return []string{th.Muted.Render(emptyCertificates)}
	}
	var lines []string
	for _, c := range cards {
		lines = append(lines, c.Lines(th)...)
	}
	return lines
}

func (c CertificateCard) Lines(th Theme) []string {
	body := []string{
		th.Muted.Render("ID: "+c.ID) + "  " + statusStyle(th, c.Status).Render(c.Status),
		th.Label.Render(c.Type),
		"Site: " + c.Site,
	}
	if c.FormType != "" {
		body = append(body, "Form: "+c.FormType)
	}
	if c.Expiry != "" {
		body = append(body, "Expiry: "+c.Expiry)
	}
	if c.QRURL != "" {
		body = append(body, "QR: "+c.QRURL)
	}
	if c.PDFURL != "" {
		body = append(body, "PDF: "+c.PDFURL)
	}
	body = append(body, th.Muted.Render(fmt.Sprintf("delete %s | qr %s", c.ID, c.ID)))

	style := th.Card
	if c.Highlighted {
		style = th.Highlight
	}
	return box(style, body)
}

// RenewalCard is the display form of one renewal item.
type RenewalCard struct {
	ID         string
	Type       string
	StatusText string
	Expired    bool
}

func RenewalCards(items []models.Renewal) []RenewalCard {
	cards := make([]RenewalCard, 0, len(items))
	for _, r := range items {
		cards = append(cards, RenewalCard{
			ID:         r.ID,
			Type:       r.Type,
			StatusText: expiryText(r.DaysLeft),
			Expired:    r.Expired(),
		})
	}
	return cards
}

func RenderRenewals(cards []RenewalCard, th Theme) []string {
	if len(cards) == 0 {
		return []string{th.Muted.Render(emptyRenewals)}
	}
	var lines []string
	for _, c := range cards {
		style := th.Warning
		if c.Expired {
			style = th.Danger
		}
		lines = append(lines, box(th.Card, []string{
			th.Label.Render(c.Type),
			th.Muted.Render("ID: " + c.ID),
			style.Render(c.StatusText),
			th.Muted.Render("retest " + c.ID),
		})...)
	}
	return lines
}

// ProfileVM is the account summary in display form.
type ProfileVM struct {
	Customer   string
	Site       string
	Compliance string
	Total      int
	Valid      int
	Expired    int
	Breakdown  []BreakdownRow
}

func ProfileView(p *models.ProfileSummary) ProfileVM {
	if p == nil {
		p = &models.ProfileSummary{}
	}
	return ProfileVM{
		Customer:   siteOrNA(p.CustomerName),
		Site:       siteOrNA(p.SiteLocation),
		Compliance: percent(p.ComplianceRate),
		Total:      p.TotalAssets,
		Valid:      p.Valid,
		Expired:    p.Expired,
		Breakdown:  sortedBreakdown(p.EquipmentBreakdown),
	}
}

func (vm ProfileVM) Lines(th Theme) []string {
	lines := []string{
		th.Label.Render("Customer: ") + vm.Customer,
		th.Label.Render("Site:     ") + vm.Site,
		th.Label.Render("Compliance rate: ") + vm.Compliance,
		fmt.Sprintf("Assets: %d  Valid: %d  Expired: %d", vm.Total, vm.Valid, vm.Expired),
	}
	if len(vm.Breakdown) > 0 {
		lines = append(lines, th.Label.Render("Equipment:"))
		for _, row := range vm.Breakdown {
			lines = append(lines, fmt.Sprintf("  %-20s %d", row.Type, row.Count))
		}
	}
	return box(th.Card, lines)
}
