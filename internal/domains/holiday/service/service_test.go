package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"facil/config"
	"facil/infras/otel/mocks"
	holidayMocks "facil/internal/domains/holiday/mocks"
	"facil/internal/domains/holiday/model"
	"facil/internal/domains/holiday/model/dto"
	"facil/internal/domains/holiday/service"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
	"facil/shared/timezone"
)

// stubCache satisfies cache.RedisCache without gomock so the detached
// invalidation goroutines can fire after a test finishes.
type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error         { return errors.New("cache miss") }
func (stubCache) Delete(_ context.Context, _ string) error             { return nil }
func (stubCache) Clear(_ context.Context, _ string) error              { return nil }

// recordingCache reports cleared prefixes through a buffered channel,
// since invalidation runs on a detached goroutine.
type recordingCache struct {
	stubCache
	cleared chan string
}

func (c recordingCache) Clear(_ context.Context, prefix string) error {
	c.cleared <- prefix

	return nil
}

func waitForCleared(t *testing.T, cleared chan string, count int) map[string]bool {
	t.Helper()

	prefixes := make(map[string]bool, count)
	deadline := time.After(2 * time.Second)

	for len(prefixes) < count {
		select {
		case prefix := <-cleared:
			prefixes[prefix] = true
		case <-deadline:
			t.Fatalf("timed out waiting for cache invalidation, saw %v", prefixes)
		}
	}

	return prefixes
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.ParseInLocation(constant.DateOnlyFormat, value, timezone.GetLocation())
	require.NoError(t, err)

	return date
}

func TestHolidayService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockClosedRepo, cfg, stubCache{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateHolidayRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateHolidayRequest{
				Date: "2026-01-01",
				Name: "New Year's Day",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "date already registered",
			req: dto.CreateHolidayRequest{
				Date: "2026-01-01",
				Name: "New Year's Day",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "malformed date",
			req: dto.CreateHolidayRequest{
				Date: "01/01/2026",
				Name: "New Year's Day",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateHolidayRequest{
				Date: "2026-01-01",
				Name: "New Year's Day",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHolidayService_CreateDuplicateReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Create(ctx, dto.CreateHolidayRequest{Date: "2026-01-01", Name: "New Year's Day"})

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, failure.ReasonDuplicateHoliday, fail.Reason)
}

func TestHolidayService_CreateLostInsertRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	// A concurrent create wins between the existence check and the
	// insert, so the insert itself trips the unique constraint.
	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Create(ctx, dto.CreateHolidayRequest{Date: "2026-01-01", Name: "New Year's Day"})

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, failure.ReasonDuplicateHoliday, fail.Reason)
	assert.Equal(t, http.StatusConflict, fail.Code)
}

func TestHolidayService_CreateClearsAvailabilityCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)
	cacheStub := recordingCache{cleared: make(chan string, 8)}

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, cacheStub, mocks.NewOtel())

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Create(ctx, dto.CreateHolidayRequest{Date: "2026-01-01", Name: "New Year's Day"})
	require.NoError(t, err)

	prefixes := waitForCleared(t, cacheStub.cleared, 3)
	assert.Contains(t, prefixes, "availability"+constant.Asterix)
}

func TestHolidayService_DeleteClosedDateClearsAvailabilityCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)
	cacheStub := recordingCache{cleared: make(chan string, 8)}

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, cacheStub, mocks.NewOtel())

	mockClosedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockClosedRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.DeleteClosedDate(ctx, "b1c2d3e4-f5a6-4b7c-8d9e-0f1a2b3c4d5e")
	require.NoError(t, err)

	prefixes := waitForCleared(t, cacheStub.cleared, 3)
	assert.Contains(t, prefixes, "availability"+constant.Asterix)
}

func TestHolidayService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "holiday not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "6c1a1f2e-8b1c-4f7a-9d25-0f0a7e6b1234")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHolidayService_BulkRegisterYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	registered := make(map[string]bool)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			flt, ok := filter.Filters[0].(gDto.Filter)
			require.True(t, ok)

			date, ok := flt.Value.(time.Time)
			require.True(t, ok)

			return registered[date.Format(constant.DateOnlyFormat)], nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, holiday model.Holiday) error {
			registered[holiday.Date.Format(constant.DateOnlyFormat)] = true

			return nil
		}).
		AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	first, err := svc.BulkRegisterYear(ctx, dto.BulkRegisterRequest{Year: 2026})
	require.NoError(t, err)
	assert.NotZero(t, first.Created)
	assert.Zero(t, first.Skipped)
	assert.Empty(t, first.Errors)

	second, err := svc.BulkRegisterYear(ctx, dto.BulkRegisterRequest{Year: 2026})
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, first.Created, second.Skipped)
	assert.Empty(t, second.Errors)
}

func TestHolidayService_BulkRegisterYear_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	_, err := svc.BulkRegisterYear(context.Background(), dto.BulkRegisterRequest{Year: 2099})

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 400, fail.Code)
}

func TestHolidayService_BulkRegisterYear_InsertFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil).
		AnyTimes()
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errors.New("database error")).
		AnyTimes()

	res, err := svc.BulkRegisterYear(context.Background(), dto.BulkRegisterRequest{Year: 2025})

	require.NoError(t, err)
	assert.Zero(t, res.Created)
	assert.Zero(t, res.Skipped)
	assert.NotEmpty(t, res.Errors)
}

func TestHolidayService_BulkRegisterYear_LostInsertRaceSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil).
		AnyTimes()
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation}).
		AnyTimes()

	res, err := svc.BulkRegisterYear(context.Background(), dto.BulkRegisterRequest{Year: 2025})

	require.NoError(t, err)
	assert.Zero(t, res.Created)
	assert.NotZero(t, res.Skipped)
	assert.Empty(t, res.Errors)
}

func TestHolidayService_CheckMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	roomID := "3f2c9d44-1f0a-4e6b-8f7d-2a9b5c0e1122"

	mockRepo.EXPECT().
		ListCovering(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Holiday{
			{ID: "h1", Date: mustDate(t, "2026-01-01"), Name: "New Year's Day"},
			{ID: "h2", Date: mustDate(t, "2024-05-01"), Name: "Founding Anniversary", Recurring: true},
		}, nil)
	mockClosedRepo.EXPECT().
		ListBetween(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
		Return([]model.ClosedDate{
			{ID: "c1", RoomID: &roomID, Date: mustDate(t, "2026-03-04"), Reason: "maintenance"},
		}, nil)

	dates := []time.Time{
		mustDate(t, "2026-01-01"),
		mustDate(t, "2026-01-03"),
		mustDate(t, "2026-01-04"),
		mustDate(t, "2026-01-05"),
		mustDate(t, "2026-03-04"),
		mustDate(t, "2026-03-06"),
		mustDate(t, "2026-05-01"),
	}

	res, err := svc.CheckMany(context.Background(), roomID, dates)
	require.NoError(t, err)

	assert.True(t, res["2026-01-01"], "registered holiday")
	assert.True(t, res["2026-01-03"], "saturday")
	assert.True(t, res["2026-01-04"], "sunday")
	assert.False(t, res["2026-01-05"], "ordinary monday")
	assert.True(t, res["2026-03-04"], "closed for maintenance")
	assert.False(t, res["2026-03-06"], "ordinary friday")
	assert.True(t, res["2026-05-01"], "recurring anniversary")
}

func TestHolidayService_CheckMany_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	res, err := svc.CheckMany(context.Background(), "room", nil)

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestHolidayService_IsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockClosedRepo := holidayMocks.NewMockClosedDate(ctrl)

	svc := service.New(mockRepo, mockClosedRepo, &config.Config{}, stubCache{}, mocks.NewOtel())

	mockRepo.EXPECT().
		ListCovering(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockClosedRepo.EXPECT().
		ListBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	unavailable, err := svc.IsUnavailable(context.Background(), "room", mustDate(t, "2026-01-04"))

	require.NoError(t, err)
	assert.True(t, unavailable)
}
