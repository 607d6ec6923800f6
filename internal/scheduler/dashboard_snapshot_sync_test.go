package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	analyticsmocks "github.com/vfg2006/flooring-analytics-api/infrastructure/repository/analytics/mocks"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/flooring-analytics-api/internal/config"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSyncDashboardSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := analyticsmocks.NewMockGateway(ctrl)
	mockSnapshotRepo := mocks.NewMockDashboardSnapshotRepository(ctrl)

	service := &DashboardSnapshotSyncService{
		gateway:      mockGateway,
		snapshotRepo: mockSnapshotRepo,
		config: config.DashboardSnapshotSync{
			Enabled:      true,
			LookbackDays: 30,
		},
	}

	kpis := &domain.DashboardKPIs{
		TotalRevenue:   358192.14,
		GrowthRate:     4.2,
		InvoiceCount:   339,
		AverageInvoice: 1056.61,
		ActiveDealers:  18,
	}

	mockGateway.EXPECT().DashboardKPIs(gomock.Any()).Return(kpis, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.DashboardSnapshot) error {
			assert.Equal(t, time.Now().Format(time.DateOnly), snapshot.Date)
			assert.Equal(t, 358192.14, snapshot.TotalRevenue)
			assert.Equal(t, 339.0, snapshot.InvoiceCount)
			assert.Equal(t, 18.0, snapshot.ActiveDealers)
			return nil
		})

	err := service.SyncDashboardSnapshot()

	assert.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Running)
	assert.False(t, status.LastSyncStartedAt.IsZero())
	assert.False(t, status.LastSyncCompletedAt.IsZero())
}

func TestSyncDashboardSnapshotErroDoGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := analyticsmocks.NewMockGateway(ctrl)
	mockSnapshotRepo := mocks.NewMockDashboardSnapshotRepository(ctrl)

	service := &DashboardSnapshotSyncService{
		gateway:      mockGateway,
		snapshotRepo: mockSnapshotRepo,
		config: config.DashboardSnapshotSync{
			Enabled:      true,
			LookbackDays: 30,
		},
	}

	mockGateway.EXPECT().DashboardKPIs(gomock.Any()).Return(nil, assert.AnError)

	err := service.SyncDashboardSnapshot()

	assert.Error(t, err)
}

func TestSyncDashboardSnapshotErroAoGravar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := analyticsmocks.NewMockGateway(ctrl)
	mockSnapshotRepo := mocks.NewMockDashboardSnapshotRepository(ctrl)

	service := &DashboardSnapshotSyncService{
		gateway:      mockGateway,
		snapshotRepo: mockSnapshotRepo,
		config: config.DashboardSnapshotSync{
			Enabled:      true,
			LookbackDays: 30,
		},
	}

	mockGateway.EXPECT().DashboardKPIs(gomock.Any()).Return(&domain.DashboardKPIs{}, nil)
	mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(assert.AnError)

	err := service.SyncDashboardSnapshot()

	assert.Error(t, err)
}
