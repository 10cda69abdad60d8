package dto

import (
	"time"

	"github.com/google/uuid"

	"facil/internal/domains/reservation/model"
	"facil/shared"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
	gModel "facil/shared/model"
	"facil/shared/timezone"
)

type CreateApplicationRequest struct {
	RoomID             string   `json:"room_id"             validate:"required,uuid"`
	SlotID             string   `json:"slot_id"             validate:"required,uuid"`
	RepresentativeName string   `json:"representative_name" validate:"required,max=100"`
	ContactEmail       string   `json:"contact_email"       validate:"required,email"`
	ContactPhone       string   `json:"contact_phone"       validate:"omitempty,max=20"`
	Purpose            string   `json:"purpose"             validate:"omitempty,max=255"`
	Dates              []string `json:"dates"               validate:"required,min=1,dive,datetime=2006-01-02"`
	ACHours            int      `json:"ac_hours"            validate:"omitempty,min=0"`
}

// ParseDates normalizes the requested dates to date-only application
// timezone values, rejecting duplicates.
func (c *CreateApplicationRequest) ParseDates() ([]time.Time, error) {
	seen := make(map[string]struct{}, len(c.Dates))
	dates := make([]time.Time, 0, len(c.Dates))

	for _, raw := range c.Dates {
		date, err := time.ParseInLocation(constant.DateOnlyFormat, raw, timezone.GetLocation())
		if err != nil {
			return nil, failure.BadRequestFromString("dates must be formatted as YYYY-MM-DD")
		}

		if _, ok := seen[raw]; ok {
			return nil, failure.BadRequestFromString("duplicate date: " + raw)
		}

		seen[raw] = struct{}{}
		dates = append(dates, date)
	}

	return dates, nil
}

func (c *CreateApplicationRequest) ToModel(applicantID string, total int) model.Application {
	return model.Application{
		ID:                 uuid.NewString(),
		ApplicantID:        applicantID,
		RepresentativeName: c.RepresentativeName,
		ContactEmail:       c.ContactEmail,
		ContactPhone:       c.ContactPhone,
		RoomID:             c.RoomID,
		SlotID:             c.SlotID,
		Purpose:            c.Purpose,
		Status:             model.StatusPending,
		PaymentStatus:      model.PaymentUnpaid,
		TotalAmount:        total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  applicantID,
			ModifiedBy: applicantID,
		},
	}
}

func (c *CreateApplicationRequest) ToUsages(application model.Application, dates []time.Time) []model.Usage {
	usages := make([]model.Usage, len(dates))
	for i, date := range dates {
		usages[i] = model.Usage{
			ID:            uuid.NewString(),
			ApplicationID: application.ID,
			RoomID:        application.RoomID,
			SlotID:        application.SlotID,
			UsageDate:     date,
			ACHours:       c.ACHours,
			Status:        model.StatusPending,
			Metadata:      application.Metadata,
		}
	}

	return usages
}

// ModifyUsageRequest updates staff/user-editable fields of one usage.
// Changing the date re-validates availability before the old date is
// released.
type ModifyUsageRequest struct {
	Date            *string `json:"date"              validate:"omitempty,datetime=2006-01-02"`
	ActualStartTime *string `json:"actual_start_time" validate:"omitempty,datetime=15:04"`
	ActualEndTime   *string `json:"actual_end_time"   validate:"omitempty,datetime=15:04"`
	ACHours         *int    `json:"ac_hours"          validate:"omitempty,min=0"`
	Remarks         *string `json:"remarks"           validate:"omitempty,max=255"`
}

func (m *ModifyUsageRequest) Empty() bool {
	return m.Date == nil && m.ActualStartTime == nil && m.ActualEndTime == nil && m.ACHours == nil && m.Remarks == nil
}

type UsageResponse struct {
	ID              string  `json:"id"`
	ApplicationID   string  `json:"application_id"`
	RoomID          string  `json:"room_id"`
	SlotID          string  `json:"slot_id"`
	UsageDate       string  `json:"usage_date"`
	ActualStartTime *string `json:"actual_start_time"`
	ActualEndTime   *string `json:"actual_end_time"`
	ACHours         int     `json:"ac_hours"`
	Remarks         string  `json:"remarks"`
	Status          string  `json:"status"`
}

func (r *UsageResponse) FromModel(model model.Usage) {
	r.ID = model.ID
	r.ApplicationID = model.ApplicationID
	r.RoomID = model.RoomID
	r.SlotID = model.SlotID
	r.UsageDate = model.UsageDate.Format(constant.DateOnlyFormat)
	r.ActualStartTime = model.ActualStartTime
	r.ActualEndTime = model.ActualEndTime
	r.ACHours = model.ACHours
	r.Remarks = model.Remarks
	r.Status = string(model.Status)
}

type ApplicationResponse struct {
	ID                 string          `json:"id"`
	ApplicantID        string          `json:"applicant_id"`
	RepresentativeName string          `json:"representative_name"`
	ContactEmail       string          `json:"contact_email"`
	ContactPhone       string          `json:"contact_phone"`
	RoomID             string          `json:"room_id"`
	SlotID             string          `json:"slot_id"`
	Purpose            string          `json:"purpose"`
	Status             string          `json:"status"`
	PaymentStatus      string          `json:"payment_status"`
	TotalAmount        int             `json:"total_amount"`
	CancellationFee    int             `json:"cancellation_fee"`
	RefundAmount       int             `json:"refund_amount"`
	CancelledAt        *time.Time      `json:"cancelled_at"`
	PaidAt             *time.Time      `json:"paid_at"`
	Usages             []UsageResponse `json:"usages,omitempty"`
	gDto.Metadata
}

func (r *ApplicationResponse) FromModel(application model.Application, usages []model.Usage) {
	r.ID = application.ID
	r.ApplicantID = application.ApplicantID
	r.RepresentativeName = application.RepresentativeName
	r.ContactEmail = application.ContactEmail
	r.ContactPhone = application.ContactPhone
	r.RoomID = application.RoomID
	r.SlotID = application.SlotID
	r.Purpose = application.Purpose
	r.Status = string(application.Status)
	r.PaymentStatus = string(application.PaymentStatus)
	r.TotalAmount = application.TotalAmount
	r.CancellationFee = application.CancellationFee
	r.RefundAmount = application.RefundAmount
	r.CancelledAt = application.CancelledAt
	r.PaidAt = application.PaidAt
	r.Metadata.FromModel(application.Metadata)

	r.Usages = make([]UsageResponse, len(usages))
	for i, usage := range usages {
		r.Usages[i].FromModel(usage)
	}
}

type GetApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetApplicationsResponse) FromModels(models []model.Application, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Applications = make([]ApplicationResponse, len(models))
	for i, mod := range models {
		r.Applications[i].FromModel(mod, nil)
	}
}

// CancelResponse is the fee/refund breakdown returned on cancellation.
type CancelResponse struct {
	ApplicationID   string `json:"application_id"`
	TotalAmount     int    `json:"total_amount"`
	FeePercent      int    `json:"fee_percent"`
	CancellationFee int    `json:"cancellation_fee"`
	RefundAmount    int    `json:"refund_amount"`
}

type DayAvailability struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

// AvailabilityResponse is the month view of one room and slot.
type AvailabilityResponse struct {
	RoomID string            `json:"room_id"`
	SlotID string            `json:"slot_id"`
	Month  string            `json:"month"`
	Days   []DayAvailability `json:"days"`
}
