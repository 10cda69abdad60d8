package model

import (
	"time"

	"facil/shared/model"
)

// Status is the lifecycle state of an application. Transitions are
// restricted to the table below; completed, cancelled and rejected are
// terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:  {StatusCompleted, StatusCancelled},
	StatusRejected:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]

	return ok
}

func (s Status) IsTerminal() bool {
	return s.Valid() && len(statusTransitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// PaymentStatus is a flag transition only; there is no payment gateway
// behind it.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

const (
	TableName  = "applications"
	EntityName = "application"

	FieldID                 = "id"
	FieldApplicantID        = "applicant_id"
	FieldRepresentativeName = "representative_name"
	FieldContactEmail       = "contact_email"
	FieldContactPhone       = "contact_phone"
	FieldRoomID             = "room_id"
	FieldSlotID             = "slot_id"
	FieldPurpose            = "purpose"
	FieldStatus             = "status"
	FieldPaymentStatus      = "payment_status"
	FieldTotalAmount        = "total_amount"
	FieldCancellationFee    = "cancellation_fee"
	FieldRefundAmount       = "refund_amount"
	FieldCancelledAt        = "cancelled_at"
	FieldPaidAt             = "paid_at"
)

type Application struct {
	ID                 string        `db:"id"`
	ApplicantID        string        `db:"applicant_id"`
	RepresentativeName string        `db:"representative_name"`
	ContactEmail       string        `db:"contact_email"`
	ContactPhone       string        `db:"contact_phone"`
	RoomID             string        `db:"room_id"`
	SlotID             string        `db:"slot_id"`
	Purpose            string        `db:"purpose"`
	Status             Status        `db:"status"`
	PaymentStatus      PaymentStatus `db:"payment_status"`
	TotalAmount        int           `db:"total_amount"`
	CancellationFee    int           `db:"cancellation_fee"`
	RefundAmount       int           `db:"refund_amount"`
	CancelledAt        *time.Time    `db:"cancelled_at"`
	PaidAt             *time.Time    `db:"paid_at"`
	model.Metadata
}

const (
	UsageTableName  = "usages"
	UsageEntityName = "usage"

	FieldUsageID            = "id"
	FieldUsageApplicationID = "application_id"
	FieldUsageRoomID        = "room_id"
	FieldUsageSlotID        = "slot_id"
	FieldUsageDate          = "usage_date"
	FieldUsageActualStart   = "actual_start_time"
	FieldUsageActualEnd     = "actual_end_time"
	FieldUsageACHours       = "ac_hours"
	FieldUsageRemarks       = "remarks"
	FieldUsageStatus        = "status"
)

// Usage is one booked room+date+slot unit of an application. The status
// column mirrors the application status so the partial unique index on
// (room_id, usage_date, slot_id) can exclude cancelled rows.
type Usage struct {
	ID              string    `db:"id"`
	ApplicationID   string    `db:"application_id"`
	RoomID          string    `db:"room_id"`
	SlotID          string    `db:"slot_id"`
	UsageDate       time.Time `db:"usage_date"`
	ActualStartTime *string   `db:"actual_start_time"`
	ActualEndTime   *string   `db:"actual_end_time"`
	ACHours         int       `db:"ac_hours"`
	Remarks         string    `db:"remarks"`
	Status          Status    `db:"status"`
	model.Metadata
}

// AvailabilityState classifies one candidate date for a room and slot.
type AvailabilityState string

const (
	AvailabilityAvailable AvailabilityState = "available"
	AvailabilityBooked    AvailabilityState = "booked"
	AvailabilityClosed    AvailabilityState = "closed"
	AvailabilityPast      AvailabilityState = "past"
)
