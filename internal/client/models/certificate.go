package models

// Certificate is one inspection certificate as listed by /api/certificates.
type Certificate struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Site          string `json:"site"`
	Status        string `json:"status"`
	PDF           string `json:"pdf,omitempty"`
	RenewalStatus string `json:"renewal_status,omitempty"`
	FormType      string `json:"form_type,omitempty"`
	Expiry        string `json:"expiry,omitempty"`
}

// SearchResult is the body of /api/search_asset/:id.
type SearchResult struct {
	Status string       `json:"status"`
	Data   *Certificate `json:"data,omitempty"`
}

// Found reports whether the lookup produced a certificate.
func (r SearchResult) Found() bool {
	return r.Status == StatusSuccess && r.Data != nil
}

// StatusSuccess is the "status" value of a successful mutation or lookup.
const StatusSuccess = "success"

// StatusResponse is the generic {status, message} body of mutations and
// error responses.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
