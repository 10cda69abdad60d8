package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"facil/config"
	"facil/infras/otel/mocks"
	roomMocks "facil/internal/domains/room/mocks"
	"facil/internal/domains/room/model"
	"facil/internal/domains/room/model/dto"
	"facil/internal/domains/room/service"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
)

// stubCache satisfies cache.RedisCache without gomock so the detached
// invalidation goroutines can fire after a test finishes.
type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error         { return errors.New("cache miss") }
func (stubCache) Delete(_ context.Context, _ string) error             { return nil }
func (stubCache) Clear(_ context.Context, _ string) error              { return nil }

type roomServiceMocks struct {
	repo  *roomMocks.MockRoom
	slot  *roomMocks.MockTimeSlot
	price *roomMocks.MockSlotPrice
}

func newRoomService(ctrl *gomock.Controller) (service.Room, roomServiceMocks) {
	m := roomServiceMocks{
		repo:  roomMocks.NewMockRoom(ctrl),
		slot:  roomMocks.NewMockTimeSlot(ctrl),
		price: roomMocks.NewMockSlotPrice(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.slot, m.price, cfg, stubCache{}, mocks.NewOtel())

	return svc, m
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateRoomRequest{
				Name:     "Meeting Room A",
				Location: "2F",
				Capacity: 12,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateRoomRequest{
				Name: "Meeting Room A",
			},
			setupMock: func() {
				m.repo.EXPECT().
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

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	id := "a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d"

	t.Run("existing room", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: id, Name: "Meeting Room A", Capacity: 12, Active: true}, nil)

		res, err := svc.Get(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, res.ID)
		assert.Equal(t, "Meeting Room A", res.Name)
	})

	t.Run("room not found", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), id)

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, failure.ReasonNotFound, fail.Reason)
	})
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{
			{ID: "r1", Name: "Meeting Room A"},
			{ID: "r2", Name: "Hall B"},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Rooms, 2)
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	id := "a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d"
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("empty request", func(t *testing.T) {
		err := svc.Update(ctx, dto.UpdateRoomRequest{}, id)

		assert.Error(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(ctx, dto.UpdateRoomRequest{Name: "Renamed"}, id)

		assert.Error(t, err)
	})

	t.Run("successful update", func(t *testing.T) {
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(ctx, dto.UpdateRoomRequest{Name: "Renamed"}, id)

		assert.NoError(t, err)
	})
}

func TestRoomService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	id := "a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d"
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			active, ok := fields[model.FieldActive].(*bool)
			require.True(t, ok)
			assert.False(t, *active)

			return nil
		})

	err := svc.Deactivate(ctx, id)

	assert.NoError(t, err)
}

func TestRoomService_SlotPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	roomID := "a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d"
	slotID := "11111111-1111-4111-8111-111111111111"
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("get prices", func(t *testing.T) {
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.price.EXPECT().
			GetByRoom(gomock.Any(), roomID).
			Return([]model.RoomSlotPrice{{RoomID: roomID, SlotID: slotID, Price: 5000}}, nil)

		res, err := svc.GetSlotPrices(ctx, roomID)

		require.NoError(t, err)
		assert.Equal(t, roomID, res.RoomID)
		require.Len(t, res.Prices, 1)
		assert.Equal(t, 5000, res.Prices[0].Price)
	})

	t.Run("get prices of unknown room", func(t *testing.T) {
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.GetSlotPrices(ctx, roomID)

		assert.Error(t, err)
	})

	t.Run("set prices", func(t *testing.T) {
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.price.EXPECT().Replace(gomock.Any(), roomID, gomock.Any()).Return(nil)

		err := svc.SetSlotPrices(ctx, dto.SetSlotPricesRequest{
			Prices: []dto.SlotPriceEntry{{SlotID: slotID, Price: 5000}},
		}, roomID)

		assert.NoError(t, err)
	})

	t.Run("set prices with unknown slot", func(t *testing.T) {
		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.slot.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.SetSlotPrices(ctx, dto.SetSlotPricesRequest{
			Prices: []dto.SlotPriceEntry{{SlotID: slotID, Price: 5000}},
		}, roomID)

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, failure.ReasonValidation, fail.Reason)
	})
}

func TestRoomService_ListTimeSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	m.slot.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.TimeSlot{
			{ID: "s1", Code: "morning", Label: "Morning", DisplayOrder: 1},
			{ID: "s2", Code: "afternoon", Label: "Afternoon", DisplayOrder: 2},
		}, nil)

	res, err := svc.ListTimeSlots(context.Background())

	require.NoError(t, err)
	require.Len(t, res.TimeSlots, 2)
	assert.Equal(t, "morning", res.TimeSlots[0].Code)
}
