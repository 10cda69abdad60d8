package model

import "facil/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldCapacity = "capacity"
	FieldActive   = "active"
)

type Room struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Capacity int    `db:"capacity"`
	Active   bool   `db:"active"`
	model.Metadata
}

const (
	SlotTableName  = "time_slots"
	SlotEntityName = "time_slot"

	FieldSlotID       = "id"
	FieldSlotCode     = "code"
	FieldSlotLabel    = "label"
	FieldDisplayOrder = "display_order"
)

// TimeSlot is a named period of a day (morning/afternoon/evening). Prices
// are attached per room through RoomSlotPrice.
type TimeSlot struct {
	ID           string `db:"id"`
	Code         string `db:"code"`
	Label        string `db:"label"`
	DisplayOrder int    `db:"display_order"`
	model.Metadata
}

const (
	PriceTableName  = "room_slot_prices"
	PriceEntityName = "room_slot_price"

	FieldPriceRoomID = "room_id"
	FieldPriceSlotID = "slot_id"
	FieldPrice       = "price"
)

// RoomSlotPrice is one cell of the room x time-slot price table. Price is
// whole yen, no fractional units.
type RoomSlotPrice struct {
	RoomID string `db:"room_id"`
	SlotID string `db:"slot_id"`
	Price  int    `db:"price"`
	model.Metadata
}
