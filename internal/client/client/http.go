package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	"github.com/dmitrijs2005/certkeeper/internal/netx"
	"github.com/google/uuid"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// HTTPClient talks to the backend's JSON API. Authentication rides on the
// session cookie kept by the jar; the client never looks at it.
//
// No timeout is applied: a hung request blocks its caller until the
// context passed in is cancelled.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
	newID   func() string
}

var (
	_ Client = (*HTTPClient)(nil)
	_ Links  = (*HTTPClient)(nil)
)

func NewHTTPClient(baseURL string, jar http.CookieJar, log logging.Logger) (*HTTPClient, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Jar: jar},
		log:     log,
		newID:   uuid.NewString,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("server url %q must be an absolute http(s) URL", raw)
	}
	return u, nil
}

func (c *HTTPClient) endpoint(path string, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL.String())
	b.WriteString(path)
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func (c *HTTPClient) do(ctx context.Context, method, target string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := c.newID()
	ctx = logging.WithRequestID(ctx, requestID)
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.log.Warn(ctx, "backend unreachable", "method", method, "url", target, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "backend call", "method", method, "url", target, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var sr models.StatusResponse
	if json.Unmarshal(b, &sr) == nil {
		apiErr.Message = sr.Message
	}
	return apiErr
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *HTTPClient) getJSON(ctx context.Context, target string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, target, nil, "")
	if err != nil {
		return err
	}
	defer drain(resp)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, target string, in any) error {
	var (
		body        io.Reader
		contentType string
	)
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, target, body, contentType)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *HTTPClient) download(ctx context.Context, target string, w io.Writer) error {
	resp, err := c.do(ctx, http.MethodGet, target, nil, "")
	if err != nil {
		return err
	}
	defer drain(resp)

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) error {
	creds := models.Credentials{Username: username, Password: string(password)}
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("/api/login"), creds)
}

func (c *HTTPClient) Register(ctx context.Context, username string, password []byte) error {
	creds := models.Credentials{Username: username, Password: string(password)}
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("/api/register"), creds)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodGet, c.endpoint("/api/logout"), nil)
}

func (c *HTTPClient) CheckSession(ctx context.Context) (*models.SessionInfo, error) {
	var info models.SessionInfo
	if err := c.getJSON(ctx, c.endpoint("/api/check_session"), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.getJSON(ctx, c.endpoint("/api/dashboard_stats"), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) Certificates(ctx context.Context) ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := c.getJSON(ctx, c.endpoint("/api/certificates"), &certs); err != nil {
		return nil, err
	}
	return certs, nil
}

// AddCertificate submits the form as multipart/form-data using the field
// names the backend reads; pdf may be nil.
func (c *HTTPClient) AddCertificate(ctx context.Context, form models.UploadForm, pdf io.Reader) error {
	fields := []netx.FormField{
		{Name: "name", Value: form.Name},
		{Name: "id", Value: form.AssetID},
		{Name: "form_type", Value: form.FormType},
		{Name: "type", Value: form.Equipment},
		{Name: "site", Value: form.Site},
		{Name: "date", Value: form.InspectionDate},
		{Name: "expiry_date", Value: form.ExpiryDate},
	}

	var file *netx.FormFile
	if pdf != nil {
		name := filepath.Base(form.PDFPath)
		if form.PDFPath == "" {
			name = form.AssetID + ".pdf"
		}
		file = &netx.FormFile{Field: "pdf_file", FileName: name, Content: pdf}
	}

	body, contentType, err := netx.MultipartBody(fields, file)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, c.endpoint("/api/add_certificate"), body, contentType)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *HTTPClient) DeleteCertificate(ctx context.Context, assetID string) error {
	return c.sendJSON(ctx, http.MethodDelete, c.endpoint("/api/delete_certificate", assetID), nil)
}

// SearchAsset returns the lookup result. A 404 is reported as a not-found
// result rather than an error.
func (c *HTTPClient) SearchAsset(ctx context.Context, assetID string) (*models.SearchResult, error) {
	var res models.SearchResult
	err := c.getJSON(ctx, c.endpoint("/api/search_asset", assetID), &res)
	if errors.Is(err, ErrNotFound) {
		return &models.SearchResult{Status: "error"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Renewals(ctx context.Context) ([]models.Renewal, error) {
	var renewals []models.Renewal
	if err := c.getJSON(ctx, c.endpoint("/api/renewals"), &renewals); err != nil {
		return nil, err
	}
	return renewals, nil
}

func (c *HTTPClient) RequestRetest(ctx context.Context, assetID string) error {
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("/api/request_retest", assetID), nil)
}

func (c *HTTPClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	var alerts []models.Notification
	if err := c.getJSON(ctx, c.endpoint("/api/notifications"), &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (c *HTTPClient) ProfileSummary(ctx context.Context) (*models.ProfileSummary, error) {
	var summary models.ProfileSummary
	if err := c.getJSON(ctx, c.endpoint("/api/profile_summary"), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *HTTPClient) ChartData(ctx context.Context) (*models.ChartData, error) {
	var data models.ChartData
	if err := c.getJSON(ctx, c.endpoint("/api/chart_data"), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *HTTPClient) SyncData(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodGet, c.endpoint("/api/admin/sync_data"), nil)
}

func (c *HTTPClient) ExportCSV(ctx context.Context, w io.Writer) error {
	return c.download(ctx, c.endpoint("/api/export_csv"), w)
}

func (c *HTTPClient) QRCode(ctx context.Context, assetID string, w io.Writer) error {
	return c.download(ctx, c.QRURL(assetID), w)
}

func (c *HTTPClient) PDF(ctx context.Context, name string, w io.Writer) error {
	return c.download(ctx, c.PDFURL(name), w)
}

// Verify opens a verification page, typically decoded from a QR label.
// A 404 means the asset is unknown and is not an error.
func (c *HTTPClient) Verify(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false, fmt.Errorf("%w: not a verification url: %q", common.ErrValidation, rawURL)
	}

	resp, err := c.do(ctx, http.MethodGet, u.String(), nil, "")
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	drain(resp)
	return true, nil
}

func (c *HTTPClient) QRURL(assetID string) string {
	return c.endpoint("/generate_qr", assetID)
}

func (c *HTTPClient) PDFURL(name string) string {
	return c.endpoint("/static/pdfs", name)
}
