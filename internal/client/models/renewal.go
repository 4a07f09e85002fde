package models

// Renewal is a certificate nearing or past expiry. DaysLeft is negative once
// the certificate has expired.
type Renewal struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	DaysLeft int    `json:"days_left"`
}

// Expired reports whether the expiry date has passed.
func (r Renewal) Expired() bool {
	return r.DaysLeft < 0
}
