package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"facil/config"
	"facil/infras/otel/mocks"
	holidayMocks "facil/internal/domains/holiday/mocks"
	holidaySvc "facil/internal/domains/holiday/service"
	resMocks "facil/internal/domains/reservation/mocks"
	"facil/internal/domains/reservation/model"
	"facil/internal/domains/reservation/model/dto"
	"facil/internal/domains/reservation/service"
	roomMocks "facil/internal/domains/room/mocks"
	"facil/internal/events"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
	"facil/shared/timezone"
)

// stubCache and stubDispatcher satisfy their interfaces without gomock so
// the detached post-commit goroutine can fire after a test finishes.
type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error         { return errors.New("cache miss") }
func (stubCache) Delete(_ context.Context, _ string) error             { return nil }
func (stubCache) Clear(_ context.Context, _ string) error              { return nil }

type stubDispatcher struct{}

func (stubDispatcher) Dispatch(_ context.Context, _ events.Event) {}

// recordingDispatcher hands dispatched events to the test through a
// buffered channel, since dispatch runs on a detached goroutine.
type recordingDispatcher struct {
	events chan events.Event
}

func (d recordingDispatcher) Dispatch(_ context.Context, event events.Event) {
	d.events <- event
}

type reservationMocks struct {
	app   *resMocks.MockApplication
	usage *resMocks.MockUsage
	room  *roomMocks.MockRoom
	slot  *roomMocks.MockTimeSlot
	price *roomMocks.MockSlotPrice
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Reservation.CancellationTiers = "7:0,3:30,0:80"
	cfg.Reservation.ACHourPrice = 500
	cfg.Reservation.MaxDatesPerApply = 31

	return cfg
}

func newReservationService(ctrl *gomock.Controller, cfg *config.Config) (service.Reservation, reservationMocks) {
	return newReservationServiceWith(ctrl, cfg, stubDispatcher{})
}

func newReservationServiceWith(ctrl *gomock.Controller, cfg *config.Config, dispatcher events.Dispatcher) (service.Reservation, reservationMocks) {
	m := reservationMocks{
		app:   resMocks.NewMockApplication(ctrl),
		usage: resMocks.NewMockUsage(ctrl),
		room:  roomMocks.NewMockRoom(ctrl),
		slot:  roomMocks.NewMockTimeSlot(ctrl),
		price: roomMocks.NewMockSlotPrice(ctrl),
	}

	holidayRepo := holidayMocks.NewMockHoliday(ctrl)
	closedRepo := holidayMocks.NewMockClosedDate(ctrl)
	holidayRepo.EXPECT().
		ListCovering(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	closedRepo.EXPECT().
		ListBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	oracle := holidaySvc.New(holidayRepo, closedRepo, cfg, stubCache{}, mocks.NewOtel())

	svc := service.New(m.app, m.usage, m.room, m.slot, m.price, oracle, dispatcher, cfg, stubCache{}, mocks.NewOtel())

	return svc, m
}

// upcomingWeekdays returns the next count weekdays strictly after today, so
// the availability check never trips over a weekend.
func upcomingWeekdays(count int) []time.Time {
	days := make([]time.Time, 0, count)

	for day := timezone.Today(); len(days) < count; {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		days = append(days, day)
	}

	return days
}

func nextSaturday() time.Time {
	day := timezone.Today().AddDate(0, 0, 1)
	for day.Weekday() != time.Saturday {
		day = day.AddDate(0, 0, 1)
	}

	return day
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, date := range dates {
		out[i] = date.Format(constant.DateOnlyFormat)
	}

	return out
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, reason, fail.Reason)
}

func createRequest(dates []time.Time, acHours int) dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		RoomID:             "a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d",
		SlotID:             "11111111-1111-4111-8111-111111111111",
		RepresentativeName: "Taro Yamada",
		ContactEmail:       "taro@example.com",
		Purpose:            "team meeting",
		Dates:              formatDates(dates),
		ACHours:            acHours,
	}
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	dates := upcomingWeekdays(2)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "applicant-1")

	m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.usage.EXPECT().
		ListBooked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.price.EXPECT().GetPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(5000, true, nil)
	m.app.EXPECT().CreateWithUsages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Create(ctx, createRequest(dates, 3))

	require.NoError(t, err)
	assert.Equal(t, "applicant-1", res.ApplicantID)
	assert.Equal(t, string(model.StatusPending), res.Status)
	assert.Equal(t, string(model.PaymentUnpaid), res.PaymentStatus)
	assert.Equal(t, 2*5000+3*500, res.TotalAmount)
	assert.Len(t, res.Usages, 2)
}

func TestReservationService_Create_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	weekdays := upcomingWeekdays(1)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "applicant-1")

	tests := []struct {
		name       string
		req        dto.CreateApplicationRequest
		setupMock  func()
		wantReason string
	}{
		{
			name:       "duplicate dates",
			req:        createRequest([]time.Time{weekdays[0], weekdays[0]}, 0),
			setupMock:  func() {},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "room not found",
			req:  createRequest(weekdays, 0),
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantReason: failure.ReasonNotFound,
		},
		{
			name: "time slot not found",
			req:  createRequest(weekdays, 0),
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantReason: failure.ReasonNotFound,
		},
		{
			name: "date already booked",
			req:  createRequest(weekdays, 0),
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.usage.EXPECT().
					ListBooked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Usage{{ID: "u1", UsageDate: weekdays[0]}}, nil)
			},
			wantReason: failure.ReasonAvailabilityConflict,
		},
		{
			name: "weekend is closed",
			req:  createRequest([]time.Time{nextSaturday()}, 0),
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.usage.EXPECT().
					ListBooked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantReason: failure.ReasonAvailabilityConflict,
		},
		{
			name: "past date",
			req:  createRequest([]time.Time{timezone.Today().AddDate(0, 0, -1)}, 0),
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.usage.EXPECT().
					ListBooked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantReason: failure.ReasonAvailabilityConflict,
		},
		{
			name: "no price configured",
			req:  createRequest(weekdays, 0),
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.usage.EXPECT().
					ListBooked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				m.price.EXPECT().GetPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, false, nil)
			},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "concurrent booking loses at commit",
			req:  createRequest(weekdays, 0),
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.usage.EXPECT().
					ListBooked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				m.price.EXPECT().GetPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(5000, true, nil)
				m.app.EXPECT().
					CreateWithUsages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(failure.AvailabilityConflict("one of the requested dates was just booked"))
			},
			wantReason: failure.ReasonAvailabilityConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(ctx, tt.req)

			assertReason(t, err, tt.wantReason)
		})
	}
}

func TestReservationService_Create_TooManyDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Reservation.MaxDatesPerApply = 2

	svc, _ := newReservationService(ctrl, cfg)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "applicant-1")
	_, err := svc.Create(ctx, createRequest(upcomingWeekdays(3), 0))

	assertReason(t, err, failure.ReasonValidation)
}

func TestReservationService_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
	id := "7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a"

	tests := []struct {
		name    string
		current model.Status
		act     func(ctx context.Context, id string) error
		wantErr bool
	}{
		{name: "approve pending", current: model.StatusPending, act: svc.Approve},
		{name: "reject pending", current: model.StatusPending, act: svc.Reject},
		{name: "complete approved", current: model.StatusApproved, act: svc.Complete},
		{name: "approve cancelled", current: model.StatusCancelled, act: svc.Approve, wantErr: true},
		{name: "reject approved", current: model.StatusApproved, act: svc.Reject, wantErr: true},
		{name: "complete pending", current: model.StatusPending, act: svc.Complete, wantErr: true},
		{name: "approve rejected", current: model.StatusRejected, act: svc.Approve, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.app.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Application{ID: id, ApplicantID: "applicant-1", Status: tt.current}, nil)
			m.usage.EXPECT().ByApplication(gomock.Any(), id).Return(nil, nil)

			if !tt.wantErr {
				m.app.EXPECT().
					UpdateWithUsages(gomock.Any(), id, gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := tt.act(ctx, id)

			if tt.wantErr {
				assertReason(t, err, failure.ReasonInvalidState)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_CompleteEmitsCompletedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := recordingDispatcher{events: make(chan events.Event, 1)}
	svc, m := newReservationServiceWith(ctrl, testConfig(), dispatcher)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
	id := "7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a"

	m.app.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Application{ID: id, ApplicantID: "applicant-1", Status: model.StatusApproved}, nil)
	m.usage.EXPECT().ByApplication(gomock.Any(), id).Return(nil, nil)
	m.app.EXPECT().
		UpdateWithUsages(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(nil)

	require.NoError(t, svc.Complete(ctx, id))

	select {
	case event := <-dispatcher.events:
		assert.Equal(t, events.ReservationCompleted, event.Code)
		assert.Equal(t, id, event.ApplicationID)
	case <-time.After(2 * time.Second):
		t.Fatal("no event dispatched after completing the application")
	}
}

func TestReservationService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	id := "7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a"
	staffCtx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleStaff)

	application := model.Application{
		ID:          id,
		ApplicantID: "applicant-1",
		Status:      model.StatusApproved,
		TotalAmount: 20000,
	}

	t.Run("two days before charges eighty percent", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), id).Return([]model.Usage{
			{ID: "u1", UsageDate: timezone.Today().AddDate(0, 0, 2), Status: model.StatusApproved},
		}, nil)
		m.app.EXPECT().UpdateWithUsages(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Cancel(staffCtx, id)

		require.NoError(t, err)
		assert.Equal(t, 80, res.FeePercent)
		assert.Equal(t, 16000, res.CancellationFee)
		assert.Equal(t, 4000, res.RefundAmount)
		assert.Equal(t, 20000, res.TotalAmount)
	})

	t.Run("far enough out is free", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), id).Return([]model.Usage{
			{ID: "u1", UsageDate: timezone.Today().AddDate(0, 0, 14), Status: model.StatusApproved},
		}, nil)
		m.app.EXPECT().UpdateWithUsages(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Cancel(staffCtx, id)

		require.NoError(t, err)
		assert.Equal(t, 0, res.FeePercent)
		assert.Equal(t, 0, res.CancellationFee)
		assert.Equal(t, 20000, res.RefundAmount)
	})

	t.Run("fee follows the earliest remaining usage", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), id).Return([]model.Usage{
			{ID: "u1", UsageDate: timezone.Today().AddDate(0, 0, 30), Status: model.StatusApproved},
			{ID: "u2", UsageDate: timezone.Today().AddDate(0, 0, 2), Status: model.StatusApproved},
		}, nil)
		m.app.EXPECT().UpdateWithUsages(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Cancel(staffCtx, id)

		require.NoError(t, err)
		assert.Equal(t, 80, res.FeePercent)
	})

	t.Run("already cancelled", func(t *testing.T) {
		cancelled := application
		cancelled.Status = model.StatusCancelled

		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Cancel(staffCtx, id)

		assertReason(t, err, failure.ReasonInvalidState)
	})

	t.Run("other users cannot cancel", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleUser)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, "someone-else")

		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Cancel(ctx, id)

		assertReason(t, err, failure.ReasonForbidden)
	})
}

func TestReservationService_Pay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	id := "7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a"
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "applicant-1")

	tests := []struct {
		name    string
		status  model.Status
		payment model.PaymentStatus
		wantErr bool
	}{
		{name: "approved and unpaid", status: model.StatusApproved, payment: model.PaymentUnpaid},
		{name: "still pending", status: model.StatusPending, payment: model.PaymentUnpaid, wantErr: true},
		{name: "already paid", status: model.StatusApproved, payment: model.PaymentPaid, wantErr: true},
		{name: "cancelled", status: model.StatusCancelled, payment: model.PaymentUnpaid, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.app.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Application{ID: id, ApplicantID: "applicant-1", Status: tt.status, PaymentStatus: tt.payment}, nil)
			m.usage.EXPECT().ByApplication(gomock.Any(), id).Return(nil, nil)

			if !tt.wantErr {
				m.app.EXPECT().
					UpdateWithUsages(gomock.Any(), id, gomock.Any(), nil).
					Return(nil)
			}

			err := svc.Pay(ctx, id)

			if tt.wantErr {
				assertReason(t, err, failure.ReasonInvalidState)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_ModifyUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	applicationID := "7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a"
	usageID := "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "applicant-1")

	weekdays := upcomingWeekdays(2)

	application := model.Application{ID: applicationID, ApplicantID: "applicant-1", Status: model.StatusApproved}
	usage := model.Usage{
		ID:            usageID,
		ApplicationID: applicationID,
		RoomID:        "room-1",
		SlotID:        "slot-1",
		UsageDate:     weekdays[0],
		Status:        model.StatusApproved,
	}

	remarks := "projector requested"
	newDate := weekdays[1].Format(constant.DateOnlyFormat)

	t.Run("empty request", func(t *testing.T) {
		err := svc.ModifyUsage(ctx, applicationID, usageID, dto.ModifyUsageRequest{})

		assertReason(t, err, failure.ReasonValidation)
	})

	t.Run("usage not found", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), applicationID).Return(nil, nil)

		err := svc.ModifyUsage(ctx, applicationID, usageID, dto.ModifyUsageRequest{Remarks: &remarks})

		assertReason(t, err, failure.ReasonNotFound)
	})

	t.Run("terminal application", func(t *testing.T) {
		completed := application
		completed.Status = model.StatusCompleted

		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completed, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), applicationID).Return([]model.Usage{usage}, nil)

		err := svc.ModifyUsage(ctx, applicationID, usageID, dto.ModifyUsageRequest{Remarks: &remarks})

		assertReason(t, err, failure.ReasonInvalidState)
	})

	t.Run("remarks update", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), applicationID).Return([]model.Usage{usage}, nil)
		m.usage.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ModifyUsage(ctx, applicationID, usageID, dto.ModifyUsageRequest{Remarks: &remarks})

		assert.NoError(t, err)
	})

	t.Run("date change to a free date", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), applicationID).Return([]model.Usage{usage}, nil)
		m.usage.EXPECT().
			ListBooked(gomock.Any(), usage.RoomID, usage.SlotID, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.usage.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ModifyUsage(ctx, applicationID, usageID, dto.ModifyUsageRequest{Date: &newDate})

		assert.NoError(t, err)
	})

	t.Run("date change to a booked date", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), applicationID).Return([]model.Usage{usage}, nil)
		m.usage.EXPECT().
			ListBooked(gomock.Any(), usage.RoomID, usage.SlotID, gomock.Any(), gomock.Any()).
			Return([]model.Usage{{ID: "other", UsageDate: weekdays[1]}}, nil)

		err := svc.ModifyUsage(ctx, applicationID, usageID, dto.ModifyUsageRequest{Date: &newDate})

		assertReason(t, err, failure.ReasonAvailabilityConflict)
	})

	t.Run("concurrent booking loses at update", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(application, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), applicationID).Return([]model.Usage{usage}, nil)
		m.usage.EXPECT().
			ListBooked(gomock.Any(), usage.RoomID, usage.SlotID, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.usage.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.AvailabilityConflict("the date was just booked"))

		err := svc.ModifyUsage(ctx, applicationID, usageID, dto.ModifyUsageRequest{Date: &newDate})

		assertReason(t, err, failure.ReasonAvailabilityConflict)
	})
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	id := "7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a"

	t.Run("owner reads own application", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "applicant-1")

		m.app.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Application{ID: id, ApplicantID: "applicant-1", Status: model.StatusPending}, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), id).Return([]model.Usage{{ID: "u1", ApplicationID: id}}, nil)

		res, err := svc.Get(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, res.ID)
		assert.Len(t, res.Usages, 1)
	})

	t.Run("not found", func(t *testing.T) {
		m.app.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Application{}, nil)

		_, err := svc.Get(context.Background(), id)

		assertReason(t, err, failure.ReasonNotFound)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "someone-else")

		m.app.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Application{ID: id, ApplicantID: "applicant-1", Status: model.StatusPending}, nil)
		m.usage.EXPECT().ByApplication(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Get(ctx, id)

		assertReason(t, err, failure.ReasonForbidden)
	})
}

func TestReservationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	m.app.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	m.app.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Application{
			{ID: "a1", Status: model.StatusPending},
			{ID: "a2", Status: model.StatusApproved},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Applications, 2)
}

func TestReservationService_MonthAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl, testConfig())

	t.Run("malformed month", func(t *testing.T) {
		_, err := svc.MonthAvailability(context.Background(), "room-1", "slot-1", "2026/01")

		assertReason(t, err, failure.ReasonValidation)
	})

	t.Run("future month", func(t *testing.T) {
		month := timezone.Today().AddDate(0, 2, 0).Format(constant.MonthFormat)
		first, err := time.ParseInLocation(constant.MonthFormat, month, timezone.GetLocation())
		require.NoError(t, err)

		booked := first
		for booked.Weekday() == time.Saturday || booked.Weekday() == time.Sunday {
			booked = booked.AddDate(0, 0, 1)
		}

		m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.usage.EXPECT().
			ListBooked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Usage{{ID: "u1", UsageDate: booked}}, nil)

		res, err := svc.MonthAvailability(context.Background(), "room-1", "slot-1", month)
		require.NoError(t, err)

		assert.Equal(t, month, res.Month)

		expectedDays := 0
		for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
			expectedDays++
		}

		assert.Len(t, res.Days, expectedDays)

		bookedKey := booked.Format(constant.DateOnlyFormat)

		for _, day := range res.Days {
			date, err := time.ParseInLocation(constant.DateOnlyFormat, day.Date, timezone.GetLocation())
			require.NoError(t, err)

			switch {
			case day.Date == bookedKey:
				assert.Equal(t, string(model.AvailabilityBooked), day.State, day.Date)
			case date.Weekday() == time.Saturday || date.Weekday() == time.Sunday:
				assert.Equal(t, string(model.AvailabilityClosed), day.State, day.Date)
			default:
				assert.Equal(t, string(model.AvailabilityAvailable), day.State, day.Date)
			}
		}
	})
}
