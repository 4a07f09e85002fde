package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/common"
)

type RenewalService interface {
	List(ctx context.Context) ([]models.Renewal, error)
	RequestRetest(ctx context.Context, assetID string) error
}

type renewalService struct {
	client client.Client
}

func NewRenewalService(client client.Client) RenewalService {
	return &renewalService{client: client}
}

func (s *renewalService) List(ctx context.Context) ([]models.Renewal, error) {
	items, err := s.client.Renewals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list renewals: %w", err)
	}
	return items, nil
}

func (s *renewalService) RequestRetest(ctx context.Context, assetID string) error {
	if common.IsBlank(assetID) {
		return common.ErrMissingAssetID
	}
	if err := s.client.RequestRetest(ctx, assetID); err != nil {
		return fmt.Errorf("request retest: %w", err)
	}
	return nil
}
