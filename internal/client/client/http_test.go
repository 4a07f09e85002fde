package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"testing"

	"github.com/dmitrijs2005/certkeeper/internal/client/client/clienttest"
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, b *clienttest.Backend) *HTTPClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	c, err := NewHTTPClient(b.URL, jar, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func loggedIn(t *testing.T, b *clienttest.Backend) *HTTPClient {
	t.Helper()
	c := newTestClient(t, b)
	require.NoError(t, c.Login(context.Background(), "alice", []byte("secret")))
	return c
}

func TestNewHTTPClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPClient("localhost:5000", nil, logging.Nop())
	require.Error(t, err)

	_, err = NewHTTPClient("ftp://host", nil, logging.Nop())
	require.Error(t, err)
}

func TestLogin_SessionCookieAuthenticatesLaterCalls(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := loggedIn(t, b)

	info, err := c.CheckSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", info.User)
}

func TestLogin_InvalidCredentialsCarryBackendMessage(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := newTestClient(t, b)

	err := c.Login(context.Background(), "alice", []byte("nope"))
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid Login", UserMessage(err, "fallback"))
}

func TestCheckSession_NoCookieIsUnauthorized(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := newTestClient(t, b)

	_, err := c.CheckSession(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_DropsSession(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := loggedIn(t, b)
	ctx := context.Background()

	require.NoError(t, c.Logout(ctx))
	_, err := c.CheckSession(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_DuplicateUser(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := newTestClient(t, b)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, "bob", []byte("pw")))
	err := c.Register(ctx, "bob", []byte("pw"))
	require.Error(t, err)
	assert.Equal(t, "User already exists", UserMessage(err, ""))
}

func TestEveryRequestCarriesRequestID(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := loggedIn(t, b)

	_, err := c.Certificates(context.Background())
	require.NoError(t, err)

	ids := b.RequestIDs()
	require.Len(t, ids, 2)
	for _, id := range ids {
		assert.Len(t, id, 36)
	}
	assert.NotEqual(t, ids[0], ids[1])
}

func TestDashboardStats_MissingKeysStayNil(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.SetStats(map[string]any{"total": 7, "expired": 2})
	c := loggedIn(t, b)

	stats, err := c.DashboardStats(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stats.Total)
	assert.Equal(t, 7, *stats.Total)
	assert.Nil(t, stats.Valid)
	assert.Nil(t, stats.Soon)
	assert.Equal(t, 2, *stats.Expired)
}

func TestAddCertificate_SendsMultipartFields(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := loggedIn(t, b)

	form := models.UploadForm{
		Name:           "Jane",
		AssetID:        "A-1",
		FormType:       "LOLER",
		Equipment:      "Hoist",
		Site:           "Dock 4",
		InspectionDate: "2026-01-01",
		ExpiryDate:     "2027-01-01",
		PDFPath:        "/tmp/reports/a1.pdf",
	}
	require.NoError(t, c.AddCertificate(context.Background(), form, strings.NewReader("%PDF-1.7")))

	ups := b.Uploads()
	require.Len(t, ups, 1)
	assert.Equal(t, map[string]string{
		"name":        "Jane",
		"id":          "A-1",
		"form_type":   "LOLER",
		"type":        "Hoist",
		"site":        "Dock 4",
		"date":        "2026-01-01",
		"expiry_date": "2027-01-01",
	}, ups[0].Fields)
	assert.Equal(t, "a1.pdf", ups[0].FileName)
	assert.Equal(t, []byte("%PDF-1.7"), ups[0].File)
}

func TestAddCertificate_RejectedFormReturnsMessage(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := loggedIn(t, b)

	err := c.AddCertificate(context.Background(), models.UploadForm{Name: "x"}, nil)
	require.Error(t, err)
	assert.Equal(t, "Asset ID required", UserMessage(err, ""))
}

func TestSearchAsset_FoundAndNotFound(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.SetCertificates(models.Certificate{ID: "A-1", Type: "Hoist", Status: "Valid"})
	c := loggedIn(t, b)
	ctx := context.Background()

	res, err := c.SearchAsset(ctx, "A-1")
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "Hoist", res.Data.Type)

	res, err = c.SearchAsset(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestDeleteCertificate_EscapesID(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.SetCertificates(models.Certificate{ID: "A 1"})
	c := loggedIn(t, b)

	require.NoError(t, c.DeleteCertificate(context.Background(), "A 1"))
	assert.Empty(t, b.Certificates())
}

func TestUnreachableBackendIsUnavailable(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := newTestClient(t, b)
	b.Close()

	_, err := c.Renewals(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestGatewayErrorsAreUnavailable(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := loggedIn(t, b)
	b.Fail(clienttest.RouteNotifications, http.StatusBadGateway, "")

	_, err := c.Notifications(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCancelledContextIsNotUnavailable(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := loggedIn(t, b)
	release := b.Gate(clienttest.RouteRenewals)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Renewals(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, ErrUnavailable)
}

func TestDownloads(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.SetCertificates(models.Certificate{ID: "A-1", Type: "Hoist", Site: "Dock", Status: "Valid"})
	c := loggedIn(t, b)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, c.ExportCSV(ctx, &buf))
	assert.Equal(t, "id,type,site,status\nA-1,Hoist,Dock,Valid\n", buf.String())

	buf.Reset()
	require.NoError(t, c.QRCode(ctx, "A-1", &buf))
	assert.Equal(t, "PNG-A-1", buf.String())

	buf.Reset()
	require.NoError(t, c.PDF(ctx, "a1.pdf", &buf))
	assert.Equal(t, "%PDF-a1.pdf", buf.String())
}

func TestSyncData_AdminOnly(t *testing.T) {
	b := clienttest.NewBackend(t)
	ctx := context.Background()

	c := loggedIn(t, b)
	require.ErrorIs(t, c.SyncData(ctx), ErrUnauthorized)

	admin := newTestClient(t, b)
	require.NoError(t, admin.Login(ctx, "admin", []byte("admin")))
	require.NoError(t, admin.SyncData(ctx))
}

func TestVerify(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.SetCertificates(models.Certificate{ID: "A-1"})
	c := newTestClient(t, b)
	ctx := context.Background()

	ok, err := c.Verify(ctx, b.VerifyURL("A-1"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Verify(ctx, b.VerifyURL("nope"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Verify(ctx, "A-1")
	require.Error(t, err)
}

func TestLinks(t *testing.T) {
	c, err := NewHTTPClient("http://certs.example:5000/", nil, logging.Nop())
	require.NoError(t, err)

	assert.Equal(t, "http://certs.example:5000/generate_qr/A-1", c.QRURL("A-1"))
	assert.Equal(t, "http://certs.example:5000/static/pdfs/a%201.pdf", c.PDFURL("a 1.pdf"))
}
