package dto

import (
	"github.com/google/uuid"

	"facil/internal/domains/room/model"
	"facil/shared"
	gDto "facil/shared/dto"
	gModel "facil/shared/model"
	"facil/shared/timezone"
)

type CreateRoomRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Capacity int    `json:"capacity" validate:"omitempty,min=0"`
	Active   *bool  `json:"active"   validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Location: c.Location,
		Capacity: c.Capacity,
		Active:   active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Location string `db:"location" json:"location" validate:"omitempty,max=100"`
	Capacity *int   `db:"capacity" json:"capacity" validate:"omitempty,min=0"`
	Active   *bool  `db:"active"   json:"active"   validate:"omitempty"`
}

type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type TimeSlotResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Label        string `json:"label"`
	DisplayOrder int    `json:"display_order"`
}

func (r *TimeSlotResponse) FromModel(model model.TimeSlot) {
	r.ID = model.ID
	r.Code = model.Code
	r.Label = model.Label
	r.DisplayOrder = model.DisplayOrder
}

type GetTimeSlotsResponse struct {
	TimeSlots []TimeSlotResponse `json:"time_slots"`
}

func (r *GetTimeSlotsResponse) FromModels(models []model.TimeSlot) {
	r.TimeSlots = make([]TimeSlotResponse, len(models))
	for i, mod := range models {
		r.TimeSlots[i].FromModel(mod)
	}
}

// SetSlotPricesRequest replaces the price rows of one room. The price table
// must cover every slot the room is offered for; partial updates go through
// repeated calls.
type SetSlotPricesRequest struct {
	Prices []SlotPriceEntry `json:"prices" validate:"required,min=1,dive"`
}

type SlotPriceEntry struct {
	SlotID string `json:"slot_id" validate:"required"`
	Price  int    `json:"price"   validate:"required,min=0"`
}

func (c *SetSlotPricesRequest) ToModels(roomID, user string) []model.RoomSlotPrice {
	prices := make([]model.RoomSlotPrice, len(c.Prices))
	for i, entry := range c.Prices {
		prices[i] = model.RoomSlotPrice{
			RoomID: roomID,
			SlotID: entry.SlotID,
			Price:  entry.Price,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return prices
}

type SlotPriceResponse struct {
	SlotID string `json:"slot_id"`
	Price  int    `json:"price"`
}

type GetSlotPricesResponse struct {
	RoomID string              `json:"room_id"`
	Prices []SlotPriceResponse `json:"prices"`
}

func (r *GetSlotPricesResponse) FromModels(roomID string, models []model.RoomSlotPrice) {
	r.RoomID = roomID

	r.Prices = make([]SlotPriceResponse, len(models))
	for i, mod := range models {
		r.Prices[i] = SlotPriceResponse{SlotID: mod.SlotID, Price: mod.Price}
	}
}
