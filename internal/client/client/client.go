package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/certkeeper/internal/client/models"
)

// Client is the transport-agnostic contract of the certificate backend.
// Every method maps to exactly one HTTP round-trip.
type Client interface {
	Close() error

	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	CheckSession(ctx context.Context) (*models.SessionInfo, error)

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	Certificates(ctx context.Context) ([]models.Certificate, error)
	AddCertificate(ctx context.Context, form models.UploadForm, pdf io.Reader) error
	DeleteCertificate(ctx context.Context, assetID string) error
	SearchAsset(ctx context.Context, assetID string) (*models.SearchResult, error)

	Renewals(ctx context.Context) ([]models.Renewal, error)
	RequestRetest(ctx context.Context, assetID string) error
	Notifications(ctx context.Context) ([]models.Notification, error)

	ProfileSummary(ctx context.Context) (*models.ProfileSummary, error)
	ChartData(ctx context.Context) (*models.ChartData, error)

	SyncData(ctx context.Context) error
	ExportCSV(ctx context.Context, w io.Writer) error
	QRCode(ctx context.Context, assetID string, w io.Writer) error
	PDF(ctx context.Context, name string, w io.Writer) error
	Verify(ctx context.Context, rawURL string) (bool, error)
}

// Links builds browser-style references to binary resources without
// fetching them.
type Links interface {
	QRURL(assetID string) string
	PDFURL(name string) string
}
