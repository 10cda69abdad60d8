package model

import (
	"time"

	"facil/shared/model"
)

const (
	TableName  = "holidays"
	EntityName = "holiday"

	FieldID        = "id"
	FieldDate      = "holiday_date"
	FieldName      = "name"
	FieldRecurring = "recurring"
)

// Holiday marks a calendar date unavailable for the whole facility.
// Recurring holidays repeat every year on the same month and day.
type Holiday struct {
	ID        string    `db:"id"`
	Date      time.Time `db:"holiday_date"`
	Name      string    `db:"name"`
	Recurring bool      `db:"recurring"`
	model.Metadata
}

const (
	ClosedDateTableName  = "closed_dates"
	ClosedDateEntityName = "closed_date"

	FieldClosedDateID     = "id"
	FieldClosedDateRoomID = "room_id"
	FieldClosedDateDate   = "closed_on"
	FieldClosedDateReason = "reason"
)

// ClosedDate is a one-off closure. A nil RoomID closes the whole
// facility for that day; otherwise only the referenced room.
type ClosedDate struct {
	ID     string    `db:"id"`
	RoomID *string   `db:"room_id"`
	Date   time.Time `db:"closed_on"`
	Reason string    `db:"reason"`
	model.Metadata
}
