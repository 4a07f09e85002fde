package models

// DashboardStats holds the four dashboard counters. A nil field means the
// backend omitted it; the slot is rendered as a placeholder.
type DashboardStats struct {
	Total   *int `json:"total"`
	Valid   *int `json:"valid"`
	Soon    *int `json:"soon"`
	Expired *int `json:"expired"`
}

// ProfileSummary is the account overview shown on the profile panel.
type ProfileSummary struct {
	CustomerName       string         `json:"customer_name"`
	SiteLocation       string         `json:"site_location"`
	ComplianceRate     float64        `json:"compliance_rate"`
	TotalAssets        int            `json:"total_assets"`
	Valid              int            `json:"valid"`
	Expired            int            `json:"expired"`
	EquipmentBreakdown map[string]int `json:"equipment_breakdown"`
}

// ChartData carries the two chart series of the profile panel.
type ChartData struct {
	StatusLabels []string  `json:"status_labels"`
	StatusValues []float64 `json:"status_values"`
	TypeLabels   []string  `json:"type_labels"`
	TypeValues   []float64 `json:"type_values"`
}
