// Package clienttest provides an in-process fake of the certificate backend
// for tests of the transport, services and console layers.
package clienttest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/gorilla/mux"
)

// Route names accepted by Hits, Fail and Gate.
const (
	RouteLogin          = "login"
	RouteRegister       = "register"
	RouteLogout         = "logout"
	RouteCheckSession   = "check_session"
	RouteDashboardStats = "dashboard_stats"
	RouteCertificates   = "certificates"
	RouteAddCertificate = "add_certificate"
	RouteDelete         = "delete_certificate"
	RouteSearch         = "search_asset"
	RouteRenewals       = "renewals"
	RouteRetest         = "request_retest"
	RouteNotifications  = "notifications"
	RouteProfile        = "profile_summary"
	RouteChartData      = "chart_data"
	RouteSync           = "sync_data"
	RouteExportCSV      = "export_csv"
	RouteQRCode         = "generate_qr"
	RoutePDF            = "pdf"
	RouteVerify         = "verify"
)

const sessionCookie = "session"

// Upload is one recorded add_certificate submission.
type Upload struct {
	Fields   map[string]string
	FileName string
	File     []byte
}

type failure struct {
	status  int
	message string
}

// Backend serves the backend's routes from in-memory state and counts
// every request per route.
type Backend struct {
	*httptest.Server

	mu         sync.Mutex
	hits       map[string]int
	failures   map[string]failure
	gates      map[string]chan struct{}
	sessions   map[string]string
	users      map[string]string
	certs      []models.Certificate
	renewals   []models.Renewal
	alerts     []models.Notification
	stats      map[string]any
	profile    models.ProfileSummary
	charts     models.ChartData
	uploads    []Upload
	requestIDs []string
	nextToken  int
}

// NewBackend starts a backend with one user, "alice"/"secret", and the
// admin account "admin"/"admin". It is closed when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		hits:     map[string]int{},
		failures: map[string]failure{},
		gates:    map[string]chan struct{}{},
		sessions: map[string]string{},
		users:    map[string]string{"alice": "secret", common.AdminUserName: "admin"},
		stats:    map[string]any{"total": 3, "valid": 1, "soon": 1, "expired": 1},
	}
	b.Server = httptest.NewServer(b.routes())
	t.Cleanup(b.Close)
	return b
}

func (b *Backend) routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/login", b.login).Methods(http.MethodPost).Name(RouteLogin)
	r.HandleFunc("/api/register", b.register).Methods(http.MethodPost).Name(RouteRegister)
	r.HandleFunc("/api/logout", b.logout).Methods(http.MethodGet).Name(RouteLogout)
	r.HandleFunc("/api/check_session", b.checkSession).Methods(http.MethodGet).Name(RouteCheckSession)

	r.HandleFunc("/api/dashboard_stats", b.authed(b.dashboardStats)).Methods(http.MethodGet).Name(RouteDashboardStats)
	r.HandleFunc("/api/certificates", b.authed(b.certificates)).Methods(http.MethodGet).Name(RouteCertificates)
	r.HandleFunc("/api/add_certificate", b.authed(b.addCertificate)).Methods(http.MethodPost).Name(RouteAddCertificate)
	r.HandleFunc("/api/delete_certificate/{id}", b.authed(b.deleteCertificate)).Methods(http.MethodDelete).Name(RouteDelete)
	r.HandleFunc("/api/search_asset/{id}", b.authed(b.searchAsset)).Methods(http.MethodGet).Name(RouteSearch)
	r.HandleFunc("/api/renewals", b.authed(b.renewalList)).Methods(http.MethodGet).Name(RouteRenewals)
	r.HandleFunc("/api/request_retest/{id}", b.authed(b.requestRetest)).Methods(http.MethodPost).Name(RouteRetest)
	r.HandleFunc("/api/notifications", b.authed(b.notifications)).Methods(http.MethodGet).Name(RouteNotifications)
	r.HandleFunc("/api/profile_summary", b.authed(b.profileSummary)).Methods(http.MethodGet).Name(RouteProfile)
	r.HandleFunc("/api/chart_data", b.authed(b.chartData)).Methods(http.MethodGet).Name(RouteChartData)
	r.HandleFunc("/api/admin/sync_data", b.authed(b.syncData)).Methods(http.MethodGet).Name(RouteSync)
	r.HandleFunc("/api/export_csv", b.authed(b.exportCSV)).Methods(http.MethodGet).Name(RouteExportCSV)

	r.HandleFunc("/generate_qr/{id}", b.qrCode).Methods(http.MethodGet).Name(RouteQRCode)
	r.HandleFunc("/static/pdfs/{name}", b.pdf).Methods(http.MethodGet).Name(RoutePDF)
	r.HandleFunc("/verify/{id}", b.verify).Methods(http.MethodGet).Name(RouteVerify)

	r.Use(b.intercept)
	return r
}

// intercept counts the hit, then honours gates and forced failures.
func (b *Backend) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := ""
		if route := mux.CurrentRoute(r); route != nil {
			name = route.GetName()
		}

		b.mu.Lock()
		b.hits[name]++
		b.requestIDs = append(b.requestIDs, r.Header.Get(common.RequestIDHeaderName))
		gate := b.gates[name]
		f, failing := b.failures[name]
		b.mu.Unlock()

		if gate != nil {
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
		}

		if failing {
			writeJSON(w, f.status, models.StatusResponse{Status: "error", Message: f.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) authed(h func(w http.ResponseWriter, r *http.Request, user string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := b.userOf(r)
		if user == "" {
			writeJSON(w, http.StatusUnauthorized, models.StatusResponse{Status: "error", Message: "Login required"})
			return
		}
		h(w, r, user)
	}
}

func (b *Backend) userOf(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[c.Value]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func success(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: models.StatusSuccess})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, models.StatusResponse{Status: "error", Message: "Bad request"})
		return
	}

	b.mu.Lock()
	pw, ok := b.users[creds.Username]
	if !ok || pw != creds.Password {
		b.mu.Unlock()
		writeJSON(w, http.StatusUnauthorized, models.StatusResponse{Status: "error", Message: "Invalid Login"})
		return
	}
	b.nextToken++
	token := fmt.Sprintf("tok-%d", b.nextToken)
	b.sessions[token] = creds.Username
	b.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: token, Path: "/", HttpOnly: true})
	success(w)
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		writeJSON(w, http.StatusBadRequest, models.StatusResponse{Status: "error", Message: "Username and password required"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[creds.Username]; exists {
		writeJSON(w, http.StatusConflict, models.StatusResponse{Status: "error", Message: "User already exists"})
		return
	}
	b.users[creds.Username] = creds.Password
	success(w)
}

func (b *Backend) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		b.mu.Lock()
		delete(b.sessions, c.Value)
		b.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	success(w)
}

func (b *Backend) checkSession(w http.ResponseWriter, r *http.Request) {
	user := b.userOf(r)
	if user == "" {
		writeJSON(w, http.StatusUnauthorized, models.StatusResponse{Status: "error"})
		return
	}
	writeJSON(w, http.StatusOK, models.SessionInfo{User: user})
}

func (b *Backend) dashboardStats(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.stats)
}

func (b *Backend) certificates(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.certs)
}

func (b *Backend) addCertificate(w http.ResponseWriter, r *http.Request, _ string) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, models.StatusResponse{Status: "error", Message: "Malformed form"})
		return
	}

	up := Upload{Fields: map[string]string{}}
	for k, v := range r.MultipartForm.Value {
		if len(v) > 0 {
			up.Fields[k] = v[0]
		}
	}
	if f, hdr, err := r.FormFile("pdf_file"); err == nil {
		up.FileName = hdr.Filename
		up.File, _ = io.ReadAll(f)
		_ = f.Close()
	}

	if strings.TrimSpace(up.Fields["id"]) == "" {
		writeJSON(w, http.StatusBadRequest, models.StatusResponse{Status: "error", Message: "Asset ID required"})
		return
	}

	b.mu.Lock()
	b.uploads = append(b.uploads, up)
	b.certs = append(b.certs, models.Certificate{
		ID:       up.Fields["id"],
		Type:     up.Fields["type"],
		Site:     up.Fields["site"],
		Status:   "Valid",
		PDF:      up.FileName,
		FormType: up.Fields["form_type"],
		Expiry:   up.Fields["expiry_date"],
	})
	b.mu.Unlock()
	success(w)
}

func (b *Backend) deleteCertificate(w http.ResponseWriter, r *http.Request, _ string) {
	id := mux.Vars(r)["id"]

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.certs {
		if c.ID == id {
			b.certs = append(b.certs[:i], b.certs[i+1:]...)
			success(w)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, models.StatusResponse{Status: "error", Message: "Certificate not found"})
}

func (b *Backend) searchAsset(w http.ResponseWriter, r *http.Request, _ string) {
	id := mux.Vars(r)["id"]

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.certs {
		if c.ID == id {
			found := c
			writeJSON(w, http.StatusOK, models.SearchResult{Status: models.StatusSuccess, Data: &found})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, models.StatusResponse{Status: "error", Message: "Asset not found"})
}

func (b *Backend) renewalList(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.renewals)
}

func (b *Backend) requestRetest(w http.ResponseWriter, _ *http.Request, _ string) {
	success(w)
}

func (b *Backend) notifications(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.alerts)
}

func (b *Backend) profileSummary(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.profile)
}

func (b *Backend) chartData(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.charts)
}

func (b *Backend) syncData(w http.ResponseWriter, _ *http.Request, user string) {
	if user != common.AdminUserName {
		writeJSON(w, http.StatusForbidden, models.StatusResponse{Status: "error", Message: "Admin only"})
		return
	}
	success(w)
}

func (b *Backend) exportCSV(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	_, _ = io.WriteString(w, "id,type,site,status\n")
	for _, c := range b.certs {
		_, _ = fmt.Fprintf(w, "%s,%s,%s,%s\n", c.ID, c.Type, c.Site, c.Status)
	}
}

func (b *Backend) qrCode(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	_, _ = io.WriteString(w, "PNG-"+mux.Vars(r)["id"])
}

func (b *Backend) pdf(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/pdf")
	_, _ = io.WriteString(w, "%PDF-"+mux.Vars(r)["name"])
}

func (b *Backend) verify(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.certs {
		if c.ID == id {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, "<h1>Verified</h1>")
			return
		}
	}
	http.NotFound(w, r)
}
