package service

import (
	"context"
	"testing"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockCampaignRepo *mocks.MockCampaignRepo
	mockOneshotRepo  *mocks.MockOneshotRepo
	mockDirectory    *mocks.MockDirectory
	mockNotifier     *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	campaignRepo := mocks.NewMockCampaignRepo(ctrl)
	dm.EXPECT().Campaign().Return(campaignRepo).AnyTimes()

	oneshotRepo := mocks.NewMockOneshotRepo(ctrl)
	dm.EXPECT().Oneshot().Return(oneshotRepo).AnyTimes()

	// transactions hand the same mocks to fn
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockCampaignRepo: campaignRepo,
		mockOneshotRepo:  oneshotRepo,
		mockDirectory:    mocks.NewMockDirectory(ctrl),
		mockNotifier:     mocks.NewMockNotifier(ctrl),
	}

	return
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
