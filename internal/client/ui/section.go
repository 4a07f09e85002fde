package ui

import "slices"

// Section names one region of the application shell.
type Section string

const (
	SectionDashboard      Section = "dashboard"
	SectionCertificates   Section = "certificates"
	SectionRenewals       Section = "renewals"
	SectionProfile        Section = "profile"
	SectionDownloads      Section = "downloads"
	SectionScan           Section = "barcode-scan"
	SectionAddCertificate Section = "add-certificate"
	SectionAdmin          Section = "admin"
)

var allSections = []Section{
	SectionDashboard,
	SectionCertificates,
	SectionRenewals,
	SectionProfile,
	SectionDownloads,
	SectionScan,
	SectionAddCertificate,
	SectionAdmin,
}

var sectionTitles = map[Section]string{
	SectionDashboard:      "Dashboard",
	SectionCertificates:   "Certificates",
	SectionRenewals:       "Renewals",
	SectionProfile:        "Profile",
	SectionDownloads:      "Downloads",
	SectionScan:           "Barcode Scan",
	SectionAddCertificate: "Add Certificate",
	SectionAdmin:          "Admin",
}

// Sections lists every section in menu order.
func Sections() []Section {
	return slices.Clone(allSections)
}

func (s Section) Valid() bool {
	return slices.Contains(allSections, s)
}

func (s Section) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	return string(s)
}
