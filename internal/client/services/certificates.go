package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/filex"
)

// CertificateService covers the certificate list and everything hanging off
// a single certificate: upload, delete, lookup and its binary artefacts.
type CertificateService interface {
	List(ctx context.Context) ([]models.Certificate, error)
	Add(ctx context.Context, form models.UploadForm) error
	Delete(ctx context.Context, assetID string) error
	// Search returns (nil, nil) when the asset does not exist.
	Search(ctx context.Context, query string) (*models.Certificate, error)
	SaveQRCode(ctx context.Context, assetID, path string) error
	SavePDF(ctx context.Context, name, path string) error
	ExportCSV(ctx context.Context, path string) error
	Verify(ctx context.Context, rawURL string) (bool, error)
}

type certificateService struct {
	client client.Client
	open   func(path string) (io.ReadCloser, error)
}

func NewCertificateService(client client.Client) CertificateService {
	return &certificateService{client: client, open: openFile}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (s *certificateService) List(ctx context.Context) ([]models.Certificate, error) {
	certs, err := s.client.Certificates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return certs, nil
}

// Add uploads the form in one request. The PDF is optional and is streamed
// from disk.
func (s *certificateService) Add(ctx context.Context, form models.UploadForm) error {
	if common.IsBlank(form.AssetID) {
		return common.ErrMissingAssetID
	}

	var pdf io.Reader
	if form.PDFPath != "" {
		f, err := s.open(form.PDFPath)
		if err != nil {
			return fmt.Errorf("open pdf: %w", err)
		}
		defer f.Close()
		pdf = f
	}

	if err := s.client.AddCertificate(ctx, form, pdf); err != nil {
		return fmt.Errorf("add certificate: %w", err)
	}
	return nil
}

func (s *certificateService) Delete(ctx context.Context, assetID string) error {
	if common.IsBlank(assetID) {
		return common.ErrMissingAssetID
	}
	if err := s.client.DeleteCertificate(ctx, assetID); err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	return nil
}

func (s *certificateService) Search(ctx context.Context, query string) (*models.Certificate, error) {
	id := strings.TrimSpace(query)
	if id == "" {
		return nil, common.ErrEmptyQuery
	}

	res, err := s.client.SearchAsset(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("search asset: %w", err)
	}
	if !res.Found() {
		return nil, nil
	}
	return res.Data, nil
}

func (s *certificateService) SaveQRCode(ctx context.Context, assetID, path string) error {
	if common.IsBlank(assetID) {
		return common.ErrMissingAssetID
	}
	return filex.SaveStream(path, func(w io.Writer) error {
		return s.client.QRCode(ctx, assetID, w)
	})
}

func (s *certificateService) SavePDF(ctx context.Context, name, path string) error {
	if common.IsBlank(name) {
		return fmt.Errorf("%w: pdf name is required", common.ErrValidation)
	}
	return filex.SaveStream(path, func(w io.Writer) error {
		return s.client.PDF(ctx, name, w)
	})
}

func (s *certificateService) ExportCSV(ctx context.Context, path string) error {
	return filex.SaveStream(path, func(w io.Writer) error {
		return s.client.ExportCSV(ctx, w)
	})
}

func (s *certificateService) Verify(ctx context.Context, rawURL string) (bool, error) {
	return s.client.Verify(ctx, rawURL)
}
