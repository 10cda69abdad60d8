package holiday

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"facil/infras/otel"
	"facil/internal/domains/holiday/model"
	"facil/internal/domains/holiday/model/dto"
	"facil/internal/domains/holiday/service"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/validator"
	"facil/transport/http/response"
)

type Handler struct {
	service service.Holiday
	otel    otel.Otel
}

func New(service service.Holiday, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/holidays", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHoliday)
		routerGroup.Get("/", handler.GetHolidays)
		routerGroup.Post("/bulk-register", handler.BulkRegister)
		routerGroup.Delete("/{id}", handler.DeleteHoliday)
	})

	router.Route("/closed-dates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClosedDate)
		routerGroup.Get("/", handler.GetClosedDates)
		routerGroup.Delete("/{id}", handler.DeleteClosedDate)
	})
}

// CreateHoliday registers a single holiday date.
// @Summary Create a holiday
// @Tags Holiday
// @Accept json
// @Produce json
// @Param request body dto.CreateHolidayRequest true "Create Holiday Request"
// @Success 201 {object} response.Message "Holiday created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "A holiday already exists on the date"
// @Failure 500 {object} response.Error
// @Router /v1/holidays [post]
// @Security BearerAuth
func (handler *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHoliday")
	defer scope.End()

	req := dto.CreateHolidayRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create holiday")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Holiday created successfully")
}

// GetHolidays lists registered holidays.
// @Summary Get holidays
// @Tags Holiday
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetHolidaysResponse] "List of holidays"
// @Failure 500 {object} response.Error
// @Router /v1/holidays [get]
func (handler *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHolidays")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	holidays, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get holidays")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, holidays)
}

// BulkRegister inserts the curated national holidays of one year.
// @Summary Bulk-register national holidays for a year
// @Tags Holiday
// @Accept json
// @Produce json
// @Param request body dto.BulkRegisterRequest true "Bulk Register Request"
// @Success 200 {object} response.Data[dto.BulkRegisterResponse] "Registration report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/holidays/bulk-register [post]
// @Security BearerAuth
func (handler *Handler) BulkRegister(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BulkRegister")
	defer scope.End()

	req := dto.BulkRegisterRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	report, err := handler.service.BulkRegisterYear(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to bulk-register holidays")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// DeleteHoliday removes a holiday by ID.
// @Summary Delete a holiday by ID
// @Tags Holiday
// @Produce json
// @Param id path string true "Holiday ID"
// @Success 200 {object} response.Message "Holiday deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/holidays/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHoliday")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete holiday")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Holiday deleted successfully")
}

// CreateClosedDate registers a facility-wide or room-specific closure.
// @Summary Create a closed date
// @Tags Holiday
// @Accept json
// @Produce json
// @Param request body dto.CreateClosedDateRequest true "Create Closed Date Request"
// @Success 201 {object} response.Message "Closed date created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/closed-dates [post]
// @Security BearerAuth
func (handler *Handler) CreateClosedDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClosedDate")
	defer scope.End()

	req := dto.CreateClosedDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateClosedDate(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create closed date")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Closed date created successfully")
}

// GetClosedDates lists closures, optionally filtered by room.
// @Summary Get closed dates
// @Tags Holiday
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Success 200 {object} response.Data[dto.GetClosedDatesResponse] "List of closed dates"
// @Failure 500 {object} response.Error
// @Router /v1/closed-dates [get]
func (handler *Handler) GetClosedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClosedDates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID := r.URL.Query().Get(model.FieldClosedDateRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldClosedDateRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.ClosedDateTableName,
		})
	}

	closedDates, err := handler.service.GetClosedDates(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get closed dates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, closedDates)
}

// DeleteClosedDate removes a closure by ID.
// @Summary Delete a closed date by ID
// @Tags Holiday
// @Produce json
// @Param id path string true "Closed Date ID"
// @Success 200 {object} response.Message "Closed date deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/closed-dates/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClosedDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClosedDate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteClosedDate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete closed date")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Closed date deleted successfully")
}
