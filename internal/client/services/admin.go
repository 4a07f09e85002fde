package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
)

// AdminService holds the operations offered only to the admin account.
// The backend enforces the restriction; the client only hides them.
type AdminService interface {
	CreateUser(ctx context.Context, username string, password []byte) error
	Sync(ctx context.Context) error
}

type adminService struct {
	client client.Client
}

func NewAdminService(client client.Client) AdminService {
	return &adminService{client: client}
}

func (s *adminService) CreateUser(ctx context.Context, username string, password []byte) error {
	if err := validateCreds(username, password); err != nil {
		return err
	}
	if err := s.client.Register(ctx, username, password); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *adminService) Sync(ctx context.Context) error {
	if err := s.client.SyncData(ctx); err != nil {
		return fmt.Errorf("sync data: %w", err)
	}
	return nil
}
