package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

func TestRenewals(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{RenewalsRet: []models.Renewal{{ID: "A", DaysLeft: -3}}}
	svc := NewRenewalService(fc)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.ErrorIs(t, svc.RequestRetest(ctx, ""), common.ErrMissingAssetID)
	require.NoError(t, svc.RequestRetest(ctx, "A"))
	require.Equal(t, "A", fc.LastID)
	require.Equal(t, []string{"Renewals", "RequestRetest"}, fc.Calls)
}

func TestRenewals_RetestError(t *testing.T) {
	fc := &fakeClient{RetestErr: client.ErrUnavailable}
	err := NewRenewalService(fc).RequestRetest(context.Background(), "A")
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestInsights(t *testing.T) {
	ctx := context.Background()
	total := 4
	fc := &fakeClient{
		StatsRet:   &models.DashboardStats{Total: &total},
		ProfileRet: &models.ProfileSummary{CustomerName: "Acme"},
		ChartsRet:  &models.ChartData{StatusLabels: []string{"Valid"}},
		AlertsRet:  []models.Notification{{ID: "1", Type: models.NotificationUrgent}},
	}
	svc := NewInsightsService(fc)

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, *stats.Total)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Acme", p.CustomerName)

	c, err := svc.Charts(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Valid"}, c.StatusLabels)

	alerts, err := svc.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
}

func TestInsights_ErrorsWrapped(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		StatsErr:   client.ErrUnavailable,
		ProfileErr: client.ErrUnauthorized,
		ChartsErr:  client.ErrUnavailable,
		AlertsErr:  client.ErrUnavailable,
	}
	svc := NewInsightsService(fc)

	_, err := svc.Dashboard(ctx)
	require.ErrorIs(t, err, client.ErrUnavailable)
	_, err = svc.Profile(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	_, err = svc.Charts(ctx)
	require.ErrorIs(t, err, client.ErrUnavailable)
	_, err = svc.Notifications(ctx)
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestAdmin_CreateUserValidatesFirst(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAdminService(fc)

	require.ErrorIs(t, svc.CreateUser(context.Background(), "", []byte("x")), common.ErrValidation)
	require.ErrorIs(t, svc.CreateUser(context.Background(), "bob", nil), common.ErrValidation)
	require.Empty(t, fc.Calls)

	require.NoError(t, svc.CreateUser(context.Background(), "bob", []byte("pw")))
	require.Equal(t, []string{"Register"}, fc.Calls)
}

func TestAdmin_CreateUserPassesMessage(t *testing.T) {
	fc := &fakeClient{RegisterErr: &client.APIError{StatusCode: 409, Message: "User already exists"}}
	err := NewAdminService(fc).CreateUser(context.Background(), "bob", []byte("pw"))
	require.Equal(t, "User already exists", client.UserMessage(err, ""))
}

func TestAdmin_Sync(t *testing.T) {
	fc := &fakeClient{SyncErr: client.ErrUnauthorized}
	require.ErrorIs(t, NewAdminService(fc).Sync(context.Background()), client.ErrUnauthorized)
}
