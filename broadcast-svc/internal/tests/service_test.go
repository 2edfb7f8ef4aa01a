package tests

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"boum-cafe/broadcast-svc/internal/domain"
	"boum-cafe/broadcast-svc/internal/mocks"
	"boum-cafe/broadcast-svc/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateSchedule(t *testing.T) {
	testCases := []struct {
		name     string
		schedule domain.Schedule
		wantErr  bool
	}{
		{"vibration", domain.Schedule{Kind: domain.KindVibration, Days: []domain.Day{domain.Monday}, Hour: 9, VibrationNumber: "3"}, false},
		{"vehicle", domain.Schedule{Kind: domain.KindVehicle, Days: []domain.Day{domain.Friday}, Hour: 18, Minute: 30, VehicleNumber: "12가3456"}, false},
		{"smoking", domain.Schedule{Kind: domain.KindSmoking, Days: []domain.Day{domain.Sunday}, Hour: 0}, false},
		{"closing", domain.Schedule{Kind: domain.KindClosing, Days: []domain.Day{domain.Saturday}, Hour: 21, Minute: 50, ClosingType: domain.ClosingFloor}, false},
		{"custom", domain.Schedule{Kind: domain.KindCustom, Days: []domain.Day{domain.Tuesday}, Hour: 23, Minute: 59, CustomText: "마감 10분 전입니다."}, false},
		{"unknown kind", domain.Schedule{Kind: "alarm", Days: []domain.Day{domain.Monday}}, true},
		{"hour too large", domain.Schedule{Kind: domain.KindSmoking, Days: []domain.Day{domain.Monday}, Hour: 24}, true},
		{"negative minute", domain.Schedule{Kind: domain.KindSmoking, Days: []domain.Day{domain.Monday}, Minute: -1}, true},
		{"minute too large", domain.Schedule{Kind: domain.KindSmoking, Days: []domain.Day{domain.Monday}, Minute: 60}, true},
		{"no days", domain.Schedule{Kind: domain.KindSmoking}, true},
		{"unknown day", domain.Schedule{Kind: domain.KindSmoking, Days: []domain.Day{"FUNDAY"}}, true},
		{"vibration without number", domain.Schedule{Kind: domain.KindVibration, Days: []domain.Day{domain.Monday}}, true},
		{"closing without type", domain.Schedule{Kind: domain.KindClosing, Days: []domain.Day{domain.Monday}}, true},
		{"custom blank text", domain.Schedule{Kind: domain.KindCustom, Days: []domain.Day{domain.Monday}, CustomText: "   "}, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			s := testCase.schedule
			err := service.ValidateSchedule(&s)
			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidSchedule)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSchedule_Normalizes(t *testing.T) {
	s := domain.Schedule{
		Kind:            domain.KindVehicle,
		Days:            []domain.Day{domain.Friday, domain.Monday, domain.Sunday, domain.Monday},
		Hour:            8,
		VehicleNumber:   " 1234 ",
		VibrationNumber: "99",
		CustomText:      "stale",
		ClosingType:     domain.ClosingStore,
	}
	require.NoError(t, service.ValidateSchedule(&s))

	assert.Equal(t, []domain.Day{domain.Sunday, domain.Monday, domain.Friday}, s.Days)
	assert.Equal(t, "1234", s.VehicleNumber)
	assert.Empty(t, s.VibrationNumber)
	assert.Empty(t, s.CustomText)
	assert.Empty(t, s.ClosingType)
}

func newScheduleService(t *testing.T) (*service.ScheduleService, *mocks.ScheduleRepository, *mocks.ChangePublisher, *service.Trigger) {
	repo := mocks.NewScheduleRepository(t)
	publisher := mocks.NewChangePublisher(t)
	trigger := service.NewTrigger(service.NewMemoryGuard(), time.UTC, nil)
	return service.NewScheduleService(repo, trigger, publisher), repo, publisher, trigger
}

func TestScheduleService_Create(t *testing.T) {
	svc, repo, publisher, trigger := newScheduleService(t)

	var stored domain.Schedule
	repo.On("CreateSchedule", mock.AnythingOfType("*domain.Schedule")).Run(func(args mock.Arguments) {
		stored = *args.Get(0).(*domain.Schedule)
	}).Return(nil)
	repo.On("ListActiveSchedules").Return([]domain.Schedule{morningBell("existing", domain.Monday)}, nil)
	publisher.On("PublishChange", mock.Anything, mock.MatchedBy(func(e domain.ChangeEvent) bool {
		return e.Type == "schedule_created" && e.Table == "broadcast_schedules" && e.ID == stored.ID
	})).Return(nil)

	s := domain.Schedule{Kind: domain.KindSmoking, Days: []domain.Day{domain.Monday}, Hour: 15}
	require.NoError(t, svc.Create(t.Context(), &s))

	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.True(t, s.IsActive)
	require.NotNil(t, s.NextRun)
	assert.Equal(t, 15, s.NextRun.Hour())
	assert.Equal(t, time.Monday, s.NextRun.Weekday())
	assert.Len(t, trigger.Schedules(), 1)
	assert.Equal(t, domain.KindSmoking, stored.Kind)
}

func TestScheduleService_CreateInvalid(t *testing.T) {
	svc, repo, _, _ := newScheduleService(t)

	s := domain.Schedule{Kind: domain.KindVibration, Days: []domain.Day{domain.Monday}}
	assert.ErrorIs(t, svc.Create(t.Context(), &s), service.ErrInvalidSchedule)
	repo.AssertNotCalled(t, "CreateSchedule", mock.Anything)
}

func TestScheduleService_CreatePublishFailureIsSwallowed(t *testing.T) {
	svc, repo, publisher, _ := newScheduleService(t)
	repo.On("CreateSchedule", mock.Anything).Return(nil)
	repo.On("ListActiveSchedules").Return([]domain.Schedule{}, nil)
	publisher.On("PublishChange", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	s := domain.Schedule{Kind: domain.KindSmoking, Days: []domain.Day{domain.Monday}}
	assert.NoError(t, svc.Create(t.Context(), &s))
}

func TestScheduleService_Delete(t *testing.T) {
	id := uuid.NewString()

	testCases := []struct {
		name    string
		id      string
		setup   func(repo *mocks.ScheduleRepository, publisher *mocks.ChangePublisher)
		wantErr error
	}{
		{
			name: "deleted",
			id:   id,
			setup: func(repo *mocks.ScheduleRepository, publisher *mocks.ChangePublisher) {
				repo.On("DeleteSchedule", id).Return(int64(1), nil)
				repo.On("ListActiveSchedules").Return([]domain.Schedule{}, nil)
				publisher.On("PublishChange", mock.Anything, mock.MatchedBy(func(e domain.ChangeEvent) bool {
					return e.Type == "schedule_deleted" && e.ID == id
				})).Return(nil)
			},
		},
		{
			name: "missing row",
			id:   id,
			setup: func(repo *mocks.ScheduleRepository, publisher *mocks.ChangePublisher) {
				repo.On("DeleteSchedule", id).Return(int64(0), nil)
			},
			wantErr: service.ErrScheduleNotFound,
		},
		{
			name:    "malformed id",
			id:      "42",
			setup:   func(repo *mocks.ScheduleRepository, publisher *mocks.ChangePublisher) {},
			wantErr: service.ErrScheduleNotFound,
		},
		{
			name: "store failure",
			id:   id,
			setup: func(repo *mocks.ScheduleRepository, publisher *mocks.ChangePublisher) {
				repo.On("DeleteSchedule", id).Return(int64(0), errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			svc, repo, publisher, _ := newScheduleService(t)
			testCase.setup(repo, publisher)

			err := svc.Delete(t.Context(), testCase.id)
			switch {
			case testCase.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(testCase.wantErr, service.ErrScheduleNotFound):
				assert.ErrorIs(t, err, service.ErrScheduleNotFound)
			default:
				assert.EqualError(t, err, testCase.wantErr.Error())
			}
		})
	}
}

func TestScheduleService_ListSetsNextRun(t *testing.T) {
	svc, repo, _, _ := newScheduleService(t)
	repo.On("ListActiveSchedules").Return([]domain.Schedule{
		morningBell("a", domain.Wednesday),
		morningBell("b"),
	}, nil)

	schedules, err := svc.List(t.Context())
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	require.NotNil(t, schedules[0].NextRun)
	assert.Equal(t, time.Wednesday, schedules[0].NextRun.Weekday())
	assert.Nil(t, schedules[1].NextRun)
}

func TestScheduleService_Reload(t *testing.T) {
	svc, repo, _, trigger := newScheduleService(t)
	repo.On("ListActiveSchedules").Return([]domain.Schedule{morningBell("a", domain.Monday)}, nil).Once()
	repo.On("ListActiveSchedules").Return(nil, errors.New("db down")).Once()

	require.NoError(t, svc.Reload(t.Context()))
	assert.Len(t, trigger.Schedules(), 1)

	assert.Error(t, svc.Reload(t.Context()))
	assert.Len(t, trigger.Schedules(), 1)
}

const lofiID = "5b0c7d2e-8f43-4c8e-9a61-2f3d4b5c6e71"

var lofi = &domain.Playlist{ID: lofiID, Title: "Lo-fi", AudioURL: "https://cdn.example/lofi.mp3", IsActive: true}

func TestMusicService_Select(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		setup   func(repo *mocks.PlaylistRepository, music *mocks.MusicController)
		wantErr error
		playing bool
	}{
		{
			name: "loads track",
			setup: func(repo *mocks.PlaylistRepository, music *mocks.MusicController) {
				repo.On("GetPlaylist", lofiID).Return(lofi, nil)
				music.On("Load", mock.Anything, lofi.AudioURL).Return(nil)
				music.On("IsPlaying").Return(true)
			},
			playing: true,
		},
		{
			name: "missing",
			setup: func(repo *mocks.PlaylistRepository, music *mocks.MusicController) {
				repo.On("GetPlaylist", lofiID).Return(nil, sql.ErrNoRows)
			},
			wantErr: service.ErrPlaylistNotFound,
		},
		{
			name: "inactive",
			setup: func(repo *mocks.PlaylistRepository, music *mocks.MusicController) {
				repo.On("GetPlaylist", lofiID).Return(&domain.Playlist{ID: lofiID, AudioURL: "x"}, nil)
			},
			wantErr: service.ErrPlaylistNotFound,
		},
		{
			name:    "malformed id never reaches the store",
			id:      "p1",
			setup:   func(repo *mocks.PlaylistRepository, music *mocks.MusicController) {},
			wantErr: service.ErrPlaylistNotFound,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewPlaylistRepository(t)
			music := mocks.NewMusicController(t)
			testCase.setup(repo, music)
			id := testCase.id
			if id == "" {
				id = lofiID
			}

			state, err := service.NewMusicService(repo, music).Select(t.Context(), id)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, state.Playlist)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, lofi, state.Playlist)
			assert.Equal(t, testCase.playing, state.Playing)
		})
	}
}

func TestMusicService_Toggle(t *testing.T) {
	repo := mocks.NewPlaylistRepository(t)
	music := mocks.NewMusicController(t)
	svc := service.NewMusicService(repo, music)

	_, err := svc.Toggle(t.Context())
	assert.ErrorIs(t, err, service.ErrNoPlaylist)

	repo.On("GetPlaylist", lofiID).Return(lofi, nil)
	music.On("Load", mock.Anything, lofi.AudioURL).Return(nil)
	music.On("IsPlaying").Return(true).Twice()
	music.On("Pause").Return(nil).Once()
	music.On("IsPlaying").Return(false)

	_, err = svc.Select(t.Context(), lofiID)
	require.NoError(t, err)

	state, err := svc.Toggle(t.Context())
	require.NoError(t, err)
	assert.False(t, state.Playing)

	music.On("Resume").Return(nil).Once()
	_, err = svc.Toggle(t.Context())
	require.NoError(t, err)
}

func TestMusicService_Playlists(t *testing.T) {
	repo := mocks.NewPlaylistRepository(t)
	repo.On("ListActivePlaylists").Return([]domain.Playlist{*lofi}, nil)

	playlists, err := service.NewMusicService(repo, mocks.NewMusicController(t)).Playlists(t.Context())
	require.NoError(t, err)
	assert.Len(t, playlists, 1)
}
