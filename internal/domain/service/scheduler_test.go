package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var berlin, _ = time.LoadLocation("Europe/Berlin")

func newTestScheduler(t *testing.T, m allMocks, now time.Time) *scheduler {
	t.Helper()

	s, err := newScheduler(
		m.mockDataManager,
		m.mockDirectory,
		m.mockNotifier,
		NewTimeMatcher(berlin, domain.DefaultMorningHour),
		SchedulerConfig{
			Reference:   berlin,
			Source:      berlin,
			TickSpec:    domain.DefaultTickSchedule,
			SendTimeout: time.Second,
		},
		testLogger(),
	)
	require.NoError(t, err)

	s.now = func() time.Time { return now }
	return s
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, berlin)
}

func expectResolvable(m allMocks) {
	m.mockDirectory.EXPECT().ResolveRole(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string) (*entity.Role, error) {
			return &entity.Role{ID: id, Name: "role-" + id, Mention: "<@&" + id + ">"}, nil
		}).AnyTimes()
	m.mockDirectory.EXPECT().ResolveChannel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string) (*entity.Channel, error) {
			return &entity.Channel{ID: id, Name: "channel-" + id}, nil
		}).AnyTimes()
}

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(t, m, at(14, 0))

	require.NotNil(t, s)
	assert.Equal(t, m.mockDataManager, s.dm)
	assert.Equal(t, m.mockNotifier, s.notifier)
	assert.NotNil(t, s.cron)
	assert.False(t, s.running)
}

func Test_validateTickSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "Should accept every 30 seconds", spec: "*/30 * * * * *"},
		{name: "Should accept once a minute", spec: "0 * * * * *"},
		{name: "Should accept a constant delay under a minute", spec: "@every 20s"},
		{name: "Should reject every two minutes", spec: "0 */2 * * * *", wantErr: true},
		{name: "Should reject hourly", spec: "@hourly", wantErr: true},
		{name: "Should reject a window that leaves most of the day uncovered", spec: "0 * 9-17 * * *", wantErr: true},
		{name: "Should reject garbage", spec: "whenever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTickSpec(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_scheduler_dueReminders(t *testing.T) {
	type args struct {
		now       time.Time
		campaigns map[int64]*entity.Campaign
		oneshots  map[int64]*entity.Oneshot
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(m allMocks)
		want      []*entity.Reminder
	}{
		{
			name: "Should remind one hour before the session",
			args: args{
				now: at(14, 0),
				campaigns: map[int64]*entity.Campaign{
					7: {ID: 7, Name: "Strahd", SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
				},
			},
			buildMock: expectResolvable,
			want: []*entity.Reminder{
				{
					Event:     entity.Schedule{Kind: entity.KindCampaign, ID: 7, Name: "Strahd", Time: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
					Threshold: entity.ThresholdOneHour,
					Role:      entity.Role{ID: "42", Name: "role-42", Mention: "<@&42>"},
					Channel:   entity.Channel{ID: "99", Name: "channel-99"},
					StartsAt:  at(15, 0),
				},
			},
		},
		{
			name: "Should not remind a minute early",
			args: args{
				now: at(13, 59),
				campaigns: map[int64]*entity.Campaign{
					7: {ID: 7, SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
				},
			},
			buildMock: expectResolvable,
		},
		{
			name: "Should not remind a minute late",
			args: args{
				now: at(14, 1),
				campaigns: map[int64]*entity.Campaign{
					7: {ID: 7, SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
				},
			},
			buildMock: expectResolvable,
		},
		{
			name: "Should send the game day reminder when enabled",
			args: args{
				now: at(9, 0),
				campaigns: map[int64]*entity.Campaign{
					1: {ID: 1, SessionTime: "2024-05-01 06:00PM", RoleID: "42", ChannelID: "99", ExtraNotification: true},
					2: {ID: 2, SessionTime: "2024-05-01 06:00PM", RoleID: "42", ChannelID: "99"},
				},
				oneshots: map[int64]*entity.Oneshot{
					1: {ID: 1, Time: "2024-05-01 06:00PM", RoleID: "42", ChannelID: "99"},
				},
			},
			buildMock: expectResolvable,
			want: []*entity.Reminder{
				{
					Event:     entity.Schedule{Kind: entity.KindCampaign, ID: 1, Time: "2024-05-01 06:00PM", RoleID: "42", ChannelID: "99", MorningReminder: true},
					Threshold: entity.ThresholdGameDay,
					Role:      entity.Role{ID: "42", Name: "role-42", Mention: "<@&42>"},
					Channel:   entity.Channel{ID: "99", Name: "channel-99"},
					StartsAt:  at(18, 0),
				},
			},
		},
		{
			name: "Should send both reminders for a ten o'clock session",
			args: args{
				now: at(9, 0),
				campaigns: map[int64]*entity.Campaign{
					3: {ID: 3, SessionTime: "2024-05-01 10:00AM", RoleID: "42", ChannelID: "99", ExtraNotification: true},
				},
			},
			buildMock: expectResolvable,
			want: []*entity.Reminder{
				{
					Event:     entity.Schedule{Kind: entity.KindCampaign, ID: 3, Time: "2024-05-01 10:00AM", RoleID: "42", ChannelID: "99", MorningReminder: true},
					Threshold: entity.ThresholdOneHour,
					Role:      entity.Role{ID: "42", Name: "role-42", Mention: "<@&42>"},
					Channel:   entity.Channel{ID: "99", Name: "channel-99"},
					StartsAt:  at(10, 0),
				},
				{
					Event:     entity.Schedule{Kind: entity.KindCampaign, ID: 3, Time: "2024-05-01 10:00AM", RoleID: "42", ChannelID: "99", MorningReminder: true},
					Threshold: entity.ThresholdGameDay,
					Role:      entity.Role{ID: "42", Name: "role-42", Mention: "<@&42>"},
					Channel:   entity.Channel{ID: "99", Name: "channel-99"},
					StartsAt:  at(10, 0),
				},
			},
		},
		{
			name: "Should order campaigns before oneshots",
			args: args{
				now: at(14, 0),
				campaigns: map[int64]*entity.Campaign{
					2: {ID: 2, SessionTime: "2024-05-01 03:00PM", RoleID: "1", ChannelID: "1"},
				},
				oneshots: map[int64]*entity.Oneshot{
					1: {ID: 1, Time: "2024-05-01 03:00PM", RoleID: "1", ChannelID: "1"},
				},
			},
			buildMock: expectResolvable,
			want: []*entity.Reminder{
				{
					Event:     entity.Schedule{Kind: entity.KindCampaign, ID: 2, Time: "2024-05-01 03:00PM", RoleID: "1", ChannelID: "1"},
					Threshold: entity.ThresholdOneHour,
					Role:      entity.Role{ID: "1", Name: "role-1", Mention: "<@&1>"},
					Channel:   entity.Channel{ID: "1", Name: "channel-1"},
					StartsAt:  at(15, 0),
				},
				{
					Event:     entity.Schedule{Kind: entity.KindOneshot, ID: 1, Time: "2024-05-01 03:00PM", RoleID: "1", ChannelID: "1"},
					Threshold: entity.ThresholdOneHour,
					Role:      entity.Role{ID: "1", Name: "role-1", Mention: "<@&1>"},
					Channel:   entity.Channel{ID: "1", Name: "channel-1"},
					StartsAt:  at(15, 0),
				},
			},
		},
		{
			name: "Should skip events without role or channel without resolving anything",
			args: args{
				now: at(14, 0),
				campaigns: map[int64]*entity.Campaign{
					1: {ID: 1, SessionTime: "2024-05-01 03:00PM", ChannelID: "99"},
					2: {ID: 2, SessionTime: "2024-05-01 03:00PM", RoleID: "42"},
					3: {ID: 3, RoleID: "42", ChannelID: "99"},
				},
			},
		},
		{
			name: "Should exclude events whose role no longer exists",
			args: args{
				now: at(14, 0),
				campaigns: map[int64]*entity.Campaign{
					1: {ID: 1, SessionTime: "2024-05-01 03:00PM", RoleID: "gone", ChannelID: "99"},
				},
			},
			buildMock: func(m allMocks) {
				m.mockDirectory.EXPECT().ResolveRole(gomock.Any(), "gone").
					Return(nil, fmt.Errorf("role gone: %w", domain.ErrUnresolvedReference)).Times(2)
			},
		},
		{
			name: "Should exclude events whose channel no longer exists",
			args: args{
				now: at(14, 0),
				oneshots: map[int64]*entity.Oneshot{
					1: {ID: 1, Time: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "gone"},
				},
			},
			buildMock: func(m allMocks) {
				m.mockDirectory.EXPECT().ResolveRole(gomock.Any(), "42").
					Return(&entity.Role{ID: "42"}, nil).Times(2)
				m.mockDirectory.EXPECT().ResolveChannel(gomock.Any(), "gone").
					Return(nil, fmt.Errorf("channel gone: %w", domain.ErrUnresolvedReference)).Times(2)
			},
		},
		{
			name: "Should skip a malformed time and keep going",
			args: args{
				now: at(14, 0),
				campaigns: map[int64]*entity.Campaign{
					1: {ID: 1, SessionTime: "next friday", RoleID: "42", ChannelID: "99"},
					2: {ID: 2, SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
				},
			},
			buildMock: expectResolvable,
			want: []*entity.Reminder{
				{
					Event:     entity.Schedule{Kind: entity.KindCampaign, ID: 2, Time: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
					Threshold: entity.ThresholdOneHour,
					Role:      entity.Role{ID: "42", Name: "role-42", Mention: "<@&42>"},
					Channel:   entity.Channel{ID: "99", Name: "channel-99"},
					StartsAt:  at(15, 0),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestScheduler(t, m, tt.args.now)

			m.mockCampaignRepo.EXPECT().List(gomock.Any()).Return(tt.args.campaigns, nil).AnyTimes()
			m.mockOneshotRepo.EXPECT().List(gomock.Any()).Return(tt.args.oneshots, nil).AnyTimes()
			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			got := s.dueReminders(context.Background(), tt.args.now)

			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Event, got[i].Event)
				assert.Equal(t, tt.want[i].Threshold, got[i].Threshold)
				assert.Equal(t, tt.want[i].Role, got[i].Role)
				assert.Equal(t, tt.want[i].Channel, got[i].Channel)
				assert.True(t, tt.want[i].StartsAt.Equal(got[i].StartsAt))
			}

			// evaluating the same minute again gives the same answer; lookups run once per evaluation
			again := s.dueReminders(context.Background(), tt.args.now)
			assert.Len(t, again, len(got))
		})
	}
}

func Test_scheduler_dueReminders_SharedReferences(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(t, m, at(14, 0))

	m.mockCampaignRepo.EXPECT().List(gomock.Any()).Return(map[int64]*entity.Campaign{
		1: {ID: 1, SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
		2: {ID: 2, SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
		3: {ID: 3, SessionTime: "2024-05-01 03:00PM", RoleID: "gone", ChannelID: "99"},
	}, nil).Times(1)
	m.mockOneshotRepo.EXPECT().List(gomock.Any()).Return(map[int64]*entity.Oneshot{
		1: {ID: 1, Time: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
		2: {ID: 2, Time: "2024-05-01 03:00PM", RoleID: "gone", ChannelID: "99"},
	}, nil).Times(1)

	m.mockDirectory.EXPECT().ResolveRole(gomock.Any(), "42").
		DoAndReturn(func(ctx context.Context, id string) (*entity.Role, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "role lookups must be bounded")
			return &entity.Role{ID: id}, nil
		}).Times(1)
	m.mockDirectory.EXPECT().ResolveRole(gomock.Any(), "gone").
		Return(nil, fmt.Errorf("role gone: %w", domain.ErrUnresolvedReference)).Times(1)
	m.mockDirectory.EXPECT().ResolveChannel(gomock.Any(), "99").
		DoAndReturn(func(ctx context.Context, id string) (*entity.Channel, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "channel lookups must be bounded")
			return &entity.Channel{ID: id}, nil
		}).Times(1)

	got := s.dueReminders(context.Background(), at(14, 0))
	require.Len(t, got, 3)
	assert.Equal(t, entity.KindCampaign, got[0].Event.Kind)
	assert.Equal(t, int64(1), got[0].Event.ID)
	assert.Equal(t, int64(2), got[1].Event.ID)
	assert.Equal(t, entity.KindOneshot, got[2].Event.Kind)
}

func Test_scheduler_dueReminders_ListFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(t, m, at(14, 0))
	expectResolvable(m)

	m.mockCampaignRepo.EXPECT().List(gomock.Any()).Return(nil, assert.AnError).Times(1)
	m.mockOneshotRepo.EXPECT().List(gomock.Any()).Return(map[int64]*entity.Oneshot{
		1: {ID: 1, Time: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
	}, nil).Times(1)

	got := s.dueReminders(context.Background(), at(14, 0))
	require.Len(t, got, 1)
	assert.Equal(t, entity.KindOneshot, got[0].Event.Kind)
}

func Test_scheduler_tick(t *testing.T) {
	t.Run("Should keep delivering after a failed send", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestScheduler(t, m, at(14, 0).Add(12*time.Second))
		expectResolvable(m)

		m.mockCampaignRepo.EXPECT().List(gomock.Any()).Return(map[int64]*entity.Campaign{
			1: {ID: 1, SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "98"},
			2: {ID: 2, SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
		}, nil).Times(1)
		m.mockOneshotRepo.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

		gomock.InOrder(
			m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, r *entity.Reminder) error {
					assert.Equal(t, int64(1), r.Event.ID)
					_, hasDeadline := ctx.Deadline()
					assert.True(t, hasDeadline, "Expected each send to be bounded")
					return fmt.Errorf("send: %w", domain.ErrDelivery)
				}).Times(1),
			m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, r *entity.Reminder) error {
					assert.Equal(t, int64(2), r.Event.ID)
					return nil
				}).Times(1),
		)

		s.tick()
	})

	t.Run("Should evaluate each minute only once", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		now := at(14, 0)
		s := newTestScheduler(t, m, now)
		expectResolvable(m)

		m.mockCampaignRepo.EXPECT().List(gomock.Any()).Return(map[int64]*entity.Campaign{
			1: {ID: 1, SessionTime: "2024-05-01 03:00PM", RoleID: "42", ChannelID: "99"},
		}, nil).Times(2)
		m.mockOneshotRepo.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)
		m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		s.tick()

		// second tick inside the same minute
		s.now = func() time.Time { return now.Add(30 * time.Second) }
		s.tick()

		// next minute is evaluated, nothing is due
		s.now = func() time.Time { return now.Add(time.Minute) }
		s.tick()
	})
}

func Test_scheduler_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockCampaignRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.mockOneshotRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

	s := newTestScheduler(t, m, at(14, 0))

	require.NoError(t, s.Start())
	require.NoError(t, s.Start(), "Starting twice should be a no-op")
	assert.True(t, s.running)

	s.Stop()
	assert.False(t, s.running)
	s.Stop()

	assert.Error(t, s.Start(), "A stopped scheduler cannot be restarted")
}

func Test_scheduler_StopWithoutStart(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(t, m, at(14, 0))
	s.Stop()

	assert.Error(t, s.Start())
}

func TestNewScheduler_InvalidTick(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	_, err := NewScheduler(m.mockDataManager, m.mockDirectory, m.mockNotifier,
		NewTimeMatcher(berlin, domain.DefaultMorningHour),
		SchedulerConfig{Reference: berlin, Source: berlin, TickSpec: "@hourly", SendTimeout: time.Second},
		testLogger(),
	)
	assert.Error(t, err)
}
