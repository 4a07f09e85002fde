package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
)

// fakeClient implements client.Client for unit tests of the services.
type fakeClient struct {
	// behaviour / results
	CloseErr    error
	LoginErr    error
	RegisterErr error
	LogoutErr   error

	SessionRet *models.SessionInfo
	SessionErr error

	StatsRet *models.DashboardStats
	StatsErr error

	CertsRet []models.Certificate
	CertsErr error

	AddErr    error
	DeleteErr error

	SearchRet *models.SearchResult
	SearchErr error

	RenewalsRet []models.Renewal
	RenewalsErr error
	RetestErr   error

	AlertsRet []models.Notification
	AlertsErr error

	ProfileRet *models.ProfileSummary
	ProfileErr error
	ChartsRet  *models.ChartData
	ChartsErr  error

	SyncErr error

	Body      string
	BodyErr   error
	VerifyRet bool
	VerifyErr error

	// argument capture
	Calls []string

	LastUser     string
	LastPassword []byte
	LastForm     models.UploadForm
	LastPDF      []byte
	LastID       string
	LastURL      string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Close() error { f.record("Close"); return f.CloseErr }

func (f *fakeClient) Login(ctx context.Context, username string, password []byte) error {
	f.record("Login")
	f.LastUser = username
	f.LastPassword = append([]byte(nil), password...)
	return f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, username string, password []byte) error {
	f.record("Register")
	f.LastUser = username
	f.LastPassword = append([]byte(nil), password...)
	return f.RegisterErr
}

func (f *fakeClient) Logout(ctx context.Context) error { f.record("Logout"); return f.LogoutErr }

func (f *fakeClient) CheckSession(ctx context.Context) (*models.SessionInfo, error) {
	f.record("CheckSession")
	return f.SessionRet, f.SessionErr
}

func (f *fakeClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	f.record("DashboardStats")
	return f.StatsRet, f.StatsErr
}

func (f *fakeClient) Certificates(ctx context.Context) ([]models.Certificate, error) {
	f.record("Certificates")
	return f.CertsRet, f.CertsErr
}

func (f *fakeClient) AddCertificate(ctx context.Context, form models.UploadForm, pdf io.Reader) error {
	f.record("AddCertificate")
	f.LastForm = form
	f.LastPDF = nil
	if pdf != nil {
		f.LastPDF, _ = io.ReadAll(pdf)
	}
	return f.AddErr
}

func (f *fakeClient) DeleteCertificate(ctx context.Context, assetID string) error {
	f.record("DeleteCertificate")
	f.LastID = assetID
	return f.DeleteErr
}

func (f *fakeClient) SearchAsset(ctx context.Context, assetID string) (*models.SearchResult, error) {
	f.record("SearchAsset")
	f.LastID = assetID
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) Renewals(ctx context.Context) ([]models.Renewal, error) {
	f.record("Renewals")
	return f.RenewalsRet, f.RenewalsErr
}

func (f *fakeClient) RequestRetest(ctx context.Context, assetID string) error {
	f.record("RequestRetest")
	f.LastID = assetID
	return f.RetestErr
}

func (f *fakeClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	f.record("Notifications")
	return f.AlertsRet, f.AlertsErr
}

func (f *fakeClient) ProfileSummary(ctx context.Context) (*models.ProfileSummary, error) {
	f.record("ProfileSummary")
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) ChartData(ctx context.Context) (*models.ChartData, error) {
	f.record("ChartData")
	return f.ChartsRet, f.ChartsErr
}

func (f *fakeClient) SyncData(ctx context.Context) error { f.record("SyncData"); return f.SyncErr }

func (f *fakeClient) write(w io.Writer) error {
	if f.Body != "" {
		if _, err := io.WriteString(w, f.Body); err != nil {
			return err
		}
	}
	return f.BodyErr
}

func (f *fakeClient) ExportCSV(ctx context.Context, w io.Writer) error {
	f.record("ExportCSV")
	return f.write(w)
}

func (f *fakeClient) QRCode(ctx context.Context, assetID string, w io.Writer) error {
	f.record("QRCode")
	f.LastID = assetID
	return f.write(w)
}

func (f *fakeClient) PDF(ctx context.Context, name string, w io.Writer) error {
	f.record("PDF")
	f.LastID = name
	return f.write(w)
}

func (f *fakeClient) Verify(ctx context.Context, rawURL string) (bool, error) {
	f.record("Verify")
	f.LastURL = rawURL
	return f.VerifyRet, f.VerifyErr
}

type fakeStore struct {
	resets   int
	ResetErr error
}

func (s *fakeStore) Reset(ctx context.Context) error {
	s.resets++
	return s.ResetErr
}
