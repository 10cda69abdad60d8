package dto

import (
	"time"

	"github.com/google/uuid"

	"facil/internal/domains/holiday/model"
	"facil/shared"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
	gModel "facil/shared/model"
	"facil/shared/timezone"
)

type CreateHolidayRequest struct {
	Date      string `json:"date"      validate:"required,datetime=2006-01-02"`
	Name      string `json:"name"      validate:"required,max=100"`
	Recurring bool   `json:"recurring"`
}

func (c *CreateHolidayRequest) ToModel(user string) (model.Holiday, error) {
	date, err := time.ParseInLocation(constant.DateOnlyFormat, c.Date, timezone.GetLocation())
	if err != nil {
		return model.Holiday{}, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD")
	}

	return model.Holiday{
		ID:        uuid.NewString(),
		Date:      date,
		Name:      c.Name,
		Recurring: c.Recurring,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type HolidayResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Recurring bool   `json:"recurring"`
	gDto.Metadata
}

func (r *HolidayResponse) FromModel(model model.Holiday) {
	r.ID = model.ID
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Name = model.Name
	r.Recurring = model.Recurring
	r.Metadata.FromModel(model.Metadata)
}

type GetHolidaysResponse struct {
	Holidays  []HolidayResponse `json:"holidays"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetHolidaysResponse) FromModels(models []model.Holiday, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Holidays = make([]HolidayResponse, len(models))
	for i, mod := range models {
		r.Holidays[i].FromModel(mod)
	}
}

// BulkRegisterRequest registers the curated national holidays of one
// calendar year. Registration is bounded to a single year per call.
type BulkRegisterRequest struct {
	Year int `json:"year" validate:"required,min=2000,max=2100"`
}

type BulkRegisterResponse struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

type CreateClosedDateRequest struct {
	RoomID *string `json:"room_id" validate:"omitempty,uuid"`
	Date   string  `json:"date"    validate:"required,datetime=2006-01-02"`
	Reason string  `json:"reason"  validate:"omitempty,max=255"`
}

func (c *CreateClosedDateRequest) ToModel(user string) (model.ClosedDate, error) {
	date, err := time.ParseInLocation(constant.DateOnlyFormat, c.Date, timezone.GetLocation())
	if err != nil {
		return model.ClosedDate{}, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD")
	}

	return model.ClosedDate{
		ID:     uuid.NewString(),
		RoomID: c.RoomID,
		Date:   date,
		Reason: c.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type ClosedDateResponse struct {
	ID     string  `json:"id"`
	RoomID *string `json:"room_id"`
	Date   string  `json:"date"`
	Reason string  `json:"reason"`
	gDto.Metadata
}

func (r *ClosedDateResponse) FromModel(model model.ClosedDate) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)
}

type GetClosedDatesResponse struct {
	ClosedDates []ClosedDateResponse `json:"closed_dates"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetClosedDatesResponse) FromModels(models []model.ClosedDate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ClosedDates = make([]ClosedDateResponse, len(models))
	for i, mod := range models {
		r.ClosedDates[i].FromModel(mod)
	}
}
