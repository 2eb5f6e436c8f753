package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOneshotService(m allMocks) *oneshotService {
	s := newOneshot(m.mockDataManager, NewAccessPolicy(nil, nil, []string{"admin"}), berlin, testLogger())
	s.now = func() time.Time { return fixedNow }
	return s
}

func Test_oneshotService_Add(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockOneshotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, o *entity.Oneshot) error {
			o.ID = 1
			return nil
		}).Times(1)

	got, err := newTestOneshotService(m).Add(context.Background(), owner, "Tomb of Horrors", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "U1", got.CreatorID)
	assert.False(t, got.Schedule().Scheduled())

	_, err = newTestOneshotService(m).Add(context.Background(), owner, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func Test_oneshotService_UpdateTime(t *testing.T) {
	tests := []struct {
		name     string
		actor    entity.Actor
		when     string
		wantTime string
		wantErr  error
	}{
		{name: "Should normalize the time", actor: owner, when: "2024-12-24 7:30PM", wantTime: "2024-12-24 07:30PM"},
		{name: "Should clear the time", actor: owner, when: "CLEAR", wantTime: ""},
		{name: "Should allow an admin", actor: admin, when: "2024-12-24 07:30PM", wantTime: "2024-12-24 07:30PM"},
		{name: "Should refuse another user", actor: stranger, when: "2024-12-24 07:30PM", wantErr: domain.ErrForbidden},
		{name: "Should reject a malformed time", actor: owner, when: "24/12/2024", wantErr: domain.ErrMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockOneshotRepo.EXPECT().GetByID(gomock.Any(), int64(2)).
				Return(&entity.Oneshot{ID: 2, Name: "Tomb", CreatorID: "U1"}, nil).AnyTimes()
			if tt.wantErr == nil {
				m.mockOneshotRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			}

			got, err := newTestOneshotService(m).UpdateTime(context.Background(), tt.actor, 2, tt.when)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTime, got.Time)
			assert.Equal(t, fixedNow, got.UpdatedAt)
		})
	}
}

func Test_oneshotService_Delete(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockOneshotRepo.EXPECT().GetByID(gomock.Any(), int64(2)).
		Return(&entity.Oneshot{ID: 2, Name: "Tomb", CreatorID: "U1"}, nil).Times(2)
	m.mockOneshotRepo.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil).Times(1)

	s := newTestOneshotService(m)

	_, err := s.Delete(context.Background(), owner, "Crypt", 2)
	assert.ErrorIs(t, err, domain.ErrNameMismatch)

	got, err := s.Delete(context.Background(), owner, "tomb", 2)
	require.NoError(t, err)
	assert.Equal(t, "Tomb", got.Name)
}

func Test_oneshotService_Details(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockOneshotRepo.EXPECT().SearchByName(gomock.Any(), "tomb").
		Return([]*entity.Oneshot{{ID: 2, Name: "Tomb"}}, nil).Times(1)
	m.mockOneshotRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, assert.AnError).Times(1)

	s := newTestOneshotService(m)

	got, err := s.Details(context.Background(), "tomb")
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = s.Details(context.Background(), "9")
	assert.ErrorIs(t, err, assert.AnError)
}
