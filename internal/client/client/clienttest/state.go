package clienttest

import (
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
)

func (b *Backend) AddUser(name, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[name] = password
}

func (b *Backend) SetCertificates(certs ...models.Certificate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.certs = append([]models.Certificate(nil), certs...)
}

// Certificates returns the current certificate list.
func (b *Backend) Certificates() []models.Certificate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Certificate(nil), b.certs...)
}

func (b *Backend) SetRenewals(renewals ...models.Renewal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renewals = append([]models.Renewal(nil), renewals...)
}

func (b *Backend) SetNotifications(alerts ...models.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = append([]models.Notification(nil), alerts...)
}

// SetStats replaces the dashboard body verbatim, so keys can be omitted.
func (b *Backend) SetStats(stats map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stats = stats
}

func (b *Backend) SetProfile(p models.ProfileSummary) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profile = p
}

func (b *Backend) SetCharts(c models.ChartData) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.charts = c
}

// Fail makes route answer status with message until Recover is called.
func (b *Backend) Fail(route string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = failure{status: status, message: message}
}

func (b *Backend) Recover(route string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, route)
}

// Gate holds requests to route until the returned release is called.
// Requests already counted by Hits are parked, not dropped.
func (b *Backend) Gate(route string) (release func()) {
	ch := make(chan struct{})

	b.mu.Lock()
	b.gates[route] = ch
	b.mu.Unlock()

	var released bool
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if released {
			return
		}
		released = true
		delete(b.gates, route)
		close(ch)
	}
}

func (b *Backend) Hits(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[route]
}

// TotalHits counts requests across every route.
func (b *Backend) TotalHits() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, v := range b.hits {
		n += v
	}
	return n
}

func (b *Backend) Uploads() []Upload {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Upload(nil), b.uploads...)
}

func (b *Backend) RequestIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requestIDs...)
}

// VerifyURL is the link a certificate's QR label encodes.
func (b *Backend) VerifyURL(assetID string) string {
	return b.URL + "/verify/" + assetID
}
