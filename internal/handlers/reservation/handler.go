package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"facil/infras/otel"
	"facil/internal/domains/reservation/model"
	"facil/internal/domains/reservation/model/dto"
	"facil/internal/domains/reservation/service"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
	"facil/shared/validator"
	"facil/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/applications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateApplication)
		routerGroup.Get("/", handler.GetApplications)
		routerGroup.Get("/myapplications", handler.GetMyApplications)
		routerGroup.Get("/{id}", handler.GetApplicationByID)
	})

	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/{id}/approve", handler.ApproveApplication)
		routerGroup.Post("/{id}/reject", handler.RejectApplication)
		routerGroup.Post("/{id}/complete", handler.CompleteApplication)
		routerGroup.Post("/{id}/cancel", handler.CancelApplication)
		routerGroup.Post("/{id}/payment", handler.PayApplication)
		routerGroup.Patch("/{id}/usages/{usageId}", handler.ModifyUsage)
	})

	router.Get("/rooms/{id}/availability", handler.GetAvailability)
}

// CreateApplication books a room for one or more dates in one slot.
// @Summary Create a reservation application
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Create Application Request"
// @Success 201 {object} response.Data[dto.ApplicationResponse] "Application summary"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "A requested date is no longer available"
// @Failure 500 {object} response.Error
// @Router /v1/applications [post]
// @Security BearerAuth
func (handler *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateApplication")
	defer scope.End()

	req := dto.CreateApplicationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	application, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create application")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, application)
}

// GetApplications lists applications with optional filters. Plain users
// only see their own applications.
// @Summary Get applications
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetApplicationsResponse] "List of applications"
// @Failure 500 {object} response.Error
// @Router /v1/applications [get]
// @Security BearerAuth
func (handler *Handler) GetApplications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApplications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := handler.buildListFilter(r)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleStaff && role != constant.RoleAdmin {
		userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldApplicantID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	applications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get applications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, applications)
}

// GetMyApplications lists the caller's own applications.
// @Summary Get the caller's applications
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetApplicationsResponse] "List of applications"
// @Failure 500 {object} response.Error
// @Router /v1/applications/myapplications [get]
// @Security BearerAuth
func (handler *Handler) GetMyApplications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyApplications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filterGroup := handler.buildListFilter(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldApplicantID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	applications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own applications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, applications)
}

// GetApplicationByID retrieves one application with its usages.
// @Summary Get an application by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Data[dto.ApplicationResponse] "Application details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/applications/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetApplicationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApplicationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	application, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get application")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, application)
}

// ApproveApplication moves a pending application to approved.
// @Summary Approve an application
// @Tags Reservation
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Message "Application approved successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Transition not allowed from the current status"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveApplication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveApplication")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Approve(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve application")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Application approved successfully")
}

// RejectApplication moves a pending application to rejected.
// @Summary Reject an application
// @Tags Reservation
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Message "Application rejected successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Transition not allowed from the current status"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectApplication")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Reject(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject application")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Application rejected successfully")
}

// CompleteApplication marks an approved application completed.
// @Summary Complete an application
// @Tags Reservation
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Message "Application completed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Transition not allowed from the current status"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteApplication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteApplication")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Complete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete application")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Application completed successfully")
}

// CancelApplication cancels a non-terminal application and returns the
// fee/refund breakdown.
// @Summary Cancel an application
// @Tags Reservation
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Data[dto.CancelResponse] "Fee and refund breakdown"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Application is already terminal"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelApplication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelApplication")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	breakdown, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel application")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, breakdown)
}

// PayApplication marks an approved application paid.
// @Summary Mark an application paid
// @Tags Reservation
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Message "Application marked paid"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Application is not approved or already paid"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/payment [post]
// @Security BearerAuth
func (handler *Handler) PayApplication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayApplication")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Pay(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark application paid")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Application marked paid")
}

// ModifyUsage updates editable fields of one usage row.
// @Summary Modify a usage of an application
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param usageId path string true "Usage ID"
// @Param request body dto.ModifyUsageRequest true "Modify Usage Request"
// @Success 200 {object} response.Message "Usage modified successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "The requested date is no longer available"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/usages/{usageId} [patch]
// @Security BearerAuth
func (handler *Handler) ModifyUsage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ModifyUsage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	usageID := chi.URLParam(r, constant.RequestParamUsageID)

	req := dto.ModifyUsageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ModifyUsage(ctx, id, usageID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to modify usage")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Usage modified successfully")
}

// GetAvailability renders the availability map of a room for one month.
// @Summary Get room availability for a month
// @Tags Reservation
// @Produce json
// @Param id path string true "Room ID"
// @Param month query string true "Month formatted as YYYY-MM"
// @Param slot query string true "Time slot ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability map"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamID)
	month := r.URL.Query().Get(constant.RequestParamMonth)
	slotID := r.URL.Query().Get(constant.RequestParamSlot)

	if month == "" || slotID == "" {
		response.WithError(w, failure.BadRequestFromString("month and slot query parameters are required"))

		return
	}

	availability, err := handler.service.MonthAvailability(ctx, roomID, slotID, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

func (handler *Handler) buildListFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if roomID := r.URL.Query().Get(model.FieldRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
