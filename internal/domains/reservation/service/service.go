package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"facil/config"
	"facil/infras/otel"
	holidayService "facil/internal/domains/holiday/service"
	"facil/internal/domains/reservation/model"
	"facil/internal/domains/reservation/model/dto"
	"facil/internal/domains/reservation/repository"
	roomModel "facil/internal/domains/room/model"
	roomRepository "facil/internal/domains/room/repository"
	"facil/internal/events"
	"facil/shared"
	"facil/shared/cache"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
	"facil/shared/timezone"
)

const (
	cacheGetApplication    = "application:get"
	cacheGetAllApplication = "application:gets"
	cacheCountApplication  = "application:count"
	cacheAvailability      = "availability"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateApplicationRequest) (dto.ApplicationResponse, error)
	Get(ctx context.Context, id string) (dto.ApplicationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetApplicationsResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) (dto.CancelResponse, error)
	Pay(ctx context.Context, id string) error
	ModifyUsage(ctx context.Context, applicationID, usageID string, req dto.ModifyUsageRequest) error
	CheckAvailability(ctx context.Context, roomID, slotID string, dates []time.Time) (map[string]model.AvailabilityState, error)
	MonthAvailability(ctx context.Context, roomID, slotID, month string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo       repository.Application
	usageRepo  repository.Usage
	roomRepo   roomRepository.Room
	slotRepo   roomRepository.TimeSlot
	priceRepo  roomRepository.SlotPrice
	holidaySvc holidayService.Holiday
	dispatcher events.Dispatcher
	policy     CancellationPolicy
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Application,
	usageRepo repository.Usage,
	roomRepo roomRepository.Room,
	slotRepo roomRepository.TimeSlot,
	priceRepo roomRepository.SlotPrice,
	holidaySvc holidayService.Holiday,
	dispatcher events.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	policy, err := ParseCancellationPolicy(cfg.Reservation.CancellationTiers)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid cancellation fee schedule")
	}

	return &serviceImpl{
		repo:       repo,
		usageRepo:  usageRepo,
		roomRepo:   roomRepo,
		slotRepo:   slotRepo,
		priceRepo:  priceRepo,
		holidaySvc: holidaySvc,
		dispatcher: dispatcher,
		policy:     policy,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Create validates the requested dates, prices the application, and
// persists the application with one usage row per date atomically. When
// any date fails the availability check the whole request is rejected.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateApplicationRequest) (res dto.ApplicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateApplication")
	defer scope.End()
	defer scope.TraceIfError(err)

	dates, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	if len(dates) > s.cfg.Reservation.MaxDatesPerApply {
		return res, failure.BadRequestFromString(fmt.Sprintf("an application may cover at most %d dates", s.cfg.Reservation.MaxDatesPerApply)) // nolint:wrapcheck
	}

	if err = s.ensureRoomAndSlot(ctx, req.RoomID, req.SlotID); err != nil {
		return res, err
	}

	states, err := s.CheckAvailability(ctx, req.RoomID, req.SlotID, dates)
	if err != nil {
		return res, err
	}

	for _, date := range dates {
		key := timezone.DateOnly(date).Format(constant.DateOnlyFormat)
		if state := states[key]; state != model.AvailabilityAvailable {
			return res, failure.AvailabilityConflict(fmt.Sprintf("date %s is %s", key, state)) // nolint:wrapcheck
		}
	}

	total, err := s.computeTotal(ctx, req.RoomID, req.SlotID, dates, req.ACHours)
	if err != nil {
		return res, err
	}

	applicant, _ := ctx.Value(constant.ContextKeyUserID).(string)
	application := req.ToModel(applicant, total)
	usages := req.ToUsages(application, dates)

	if err = s.repo.CreateWithUsages(ctx, application, usages); err != nil {
		log.Error().Err(err).Msg("failed to create application")

		return res, err
	}

	s.afterCommit(ctx, events.Event{
		Code:          events.ReservationCreated,
		ApplicationID: application.ID,
		ApplicantID:   application.ApplicantID,
		RoomID:        application.RoomID,
	})

	res.FromModel(application, usages)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ApplicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetApplication")
	defer scope.End()
	defer scope.TraceIfError(err)

	application, usages, err := s.getAggregate(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.ensureOwnership(ctx, application); err != nil {
		return res, err
	}

	res.FromModel(application, usages)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetApplicationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllApplications")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllApplication, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for applications")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count applications")

		return res, fmt.Errorf("failed to count applications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get applications")

		return res, fmt.Errorf("failed to get applications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save applications to cache")
		}
	}()

	return res, nil
}

// Approve moves a pending application to approved.
func (s *serviceImpl) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusApproved, events.ReservationApproved)
}

// Reject moves a pending application to rejected.
func (s *serviceImpl) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusRejected, "")
}

// Complete moves an approved application to completed after the usage
// has taken place.
func (s *serviceImpl) Complete(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusCompleted, "")
}

func (s *serviceImpl) transition(ctx context.Context, id string, next model.Status, eventCode string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	application, _, err := s.getAggregate(ctx, id)
	if err != nil {
		return err
	}

	if !application.Status.CanTransitionTo(next) {
		return failure.InvalidState(fmt.Sprintf("cannot move application from %s to %s", application.Status, next)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus: next,
		"modified_at":     timezone.Now(),
		"modified_by":     user,
	}

	if err = s.repo.UpdateWithUsages(ctx, id, fields, map[string]any{
		model.FieldUsageStatus: next,
		"modified_at":          timezone.Now(),
		"modified_by":          user,
	}); err != nil {
		log.Error().Err(err).Msg("failed to transition application")

		return err
	}

	if eventCode == "" {
		switch next {
		case model.StatusRejected:
			eventCode = events.ReservationRejected
		case model.StatusCompleted:
			eventCode = events.ReservationCompleted
		}
	}

	s.afterCommit(ctx, events.Event{
		Code:          eventCode,
		ApplicationID: application.ID,
		ApplicantID:   application.ApplicantID,
		RoomID:        application.RoomID,
		Detail:        string(next),
	})

	return nil
}

// Cancel moves a non-terminal application to cancelled, computes the
// tiered fee against the earliest remaining usage date, and releases the
// usage rows so their dates become bookable again.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelApplication")
	defer scope.End()
	defer scope.TraceIfError(err)

	application, usages, err := s.getAggregate(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.ensureOwnership(ctx, application); err != nil {
		return res, err
	}

	if application.Status.IsTerminal() {
		return res, failure.InvalidState(fmt.Sprintf("application is already %s", application.Status)) // nolint:wrapcheck
	}

	earliest, ok := earliestActiveDate(usages)
	if !ok {
		return res, failure.InvalidState("application has no active usages") // nolint:wrapcheck
	}

	fee, refund, percent := s.policy.Breakdown(application.TotalAmount, daysBetween(timezone.Today(), earliest))

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	applicationFields := map[string]any{
		model.FieldStatus:          model.StatusCancelled,
		model.FieldCancellationFee: fee,
		model.FieldRefundAmount:    refund,
		model.FieldCancelledAt:     now,
		"modified_at":              now,
		"modified_by":              user,
	}

	usageFields := map[string]any{
		model.FieldUsageStatus: model.StatusCancelled,
		"modified_at":          now,
		"modified_by":          user,
	}

	if err = s.repo.UpdateWithUsages(ctx, id, applicationFields, usageFields); err != nil {
		log.Error().Err(err).Msg("failed to cancel application")

		return res, err
	}

	s.afterCommit(ctx, events.Event{
		Code:          events.ReservationCancelled,
		ApplicationID: application.ID,
		ApplicantID:   application.ApplicantID,
		RoomID:        application.RoomID,
		Detail:        fmt.Sprintf("fee=%d refund=%d", fee, refund),
	})

	return dto.CancelResponse{
		ApplicationID:   application.ID,
		TotalAmount:     application.TotalAmount,
		FeePercent:      percent,
		CancellationFee: fee,
		RefundAmount:    refund,
	}, nil
}

// Pay flips the payment flag of an approved, unpaid application. There is
// no payment gateway behind this transition.
func (s *serviceImpl) Pay(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PayApplication")
	defer scope.End()
	defer scope.TraceIfError(err)

	application, _, err := s.getAggregate(ctx, id)
	if err != nil {
		return err
	}

	if err = s.ensureOwnership(ctx, application); err != nil {
		return err
	}

	if application.Status != model.StatusApproved || application.PaymentStatus != model.PaymentUnpaid {
		return failure.InvalidState(fmt.Sprintf("payment requires an approved unpaid application, got %s/%s", application.Status, application.PaymentStatus)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	fields := map[string]any{
		model.FieldPaymentStatus: model.PaymentPaid,
		model.FieldPaidAt:        now,
		"modified_at":            now,
		"modified_by":            user,
	}

	if err = s.repo.UpdateWithUsages(ctx, id, fields, nil); err != nil {
		log.Error().Err(err).Msg("failed to mark application paid")

		return err
	}

	s.afterCommit(ctx, events.Event{
		Code:          events.ReservationPaid,
		ApplicationID: application.ID,
		ApplicantID:   application.ApplicantID,
		RoomID:        application.RoomID,
	})

	return nil
}

// ModifyUsage updates the editable fields of one usage while the
// application is not terminal. A date change re-runs the availability
// check for the new date, and the row update swaps the dates atomically
// so the old date is never released before the new one is held.
func (s *serviceImpl) ModifyUsage(ctx context.Context, applicationID, usageID string, req dto.ModifyUsageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ModifyUsage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return failure.BadRequestFromString("modify request cannot be empty") // nolint:wrapcheck
	}

	application, usages, err := s.getAggregate(ctx, applicationID)
	if err != nil {
		return err
	}

	if err = s.ensureOwnership(ctx, application); err != nil {
		return err
	}

	if application.Status.IsTerminal() {
		return failure.InvalidState(fmt.Sprintf("application is already %s", application.Status)) // nolint:wrapcheck
	}

	var usage model.Usage

	found := false

	for _, u := range usages {
		if u.ID == usageID {
			usage = u
			found = true

			break
		}
	}

	if !found {
		return failure.NotFound("usage not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields := map[string]any{
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	if req.Date != nil {
		newDate, parseErr := time.ParseInLocation(constant.DateOnlyFormat, *req.Date, timezone.GetLocation())
		if parseErr != nil {
			return failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		if !timezone.DateOnly(usage.UsageDate).Equal(newDate) {
			states, checkErr := s.CheckAvailability(ctx, usage.RoomID, usage.SlotID, []time.Time{newDate})
			if checkErr != nil {
				return checkErr
			}

			key := newDate.Format(constant.DateOnlyFormat)
			if state := states[key]; state != model.AvailabilityAvailable {
				return failure.AvailabilityConflict(fmt.Sprintf("date %s is %s", key, state)) // nolint:wrapcheck
			}

			fields[model.FieldUsageDate] = newDate
		}
	}

	if req.ActualStartTime != nil {
		fields[model.FieldUsageActualStart] = *req.ActualStartTime
	}

	if req.ActualEndTime != nil {
		fields[model.FieldUsageActualEnd] = *req.ActualEndTime
	}

	if req.ACHours != nil {
		fields[model.FieldUsageACHours] = *req.ACHours
	}

	if req.Remarks != nil {
		fields[model.FieldUsageRemarks] = *req.Remarks
	}

	filter := shared.FilterByID(usageID, model.FieldUsageID, model.UsageTableName)

	if err = s.usageRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to modify usage")

		return err
	}

	s.afterCommit(ctx, events.Event{
		Code:          events.ReservationModified,
		ApplicationID: application.ID,
		ApplicantID:   application.ApplicantID,
		RoomID:        application.RoomID,
		Detail:        usageID,
	})

	return nil
}

func (s *serviceImpl) getAggregate(ctx context.Context, id string) (model.Application, []model.Usage, error) {
	application, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get application")

		return application, nil, fmt.Errorf("failed to get application: %w", err)
	}

	if application.ID == constant.Empty {
		return application, nil, failure.NotFound("application not found") // nolint:wrapcheck
	}

	usages, err := s.usageRepo.ByApplication(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get usages")

		return application, nil, fmt.Errorf("failed to get usages: %w", err)
	}

	return application, usages, nil
}

func (s *serviceImpl) ensureRoomAndSlot(ctx context.Context, roomID, slotID string) error {
	roomFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: roomModel.FieldID, Operator: gDto.FilterOperatorEq, Value: roomID, Table: roomModel.TableName},
			gDto.Filter{Field: roomModel.FieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: roomModel.TableName},
		},
	}

	exist, err := s.roomRepo.Exist(ctx, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	exist, err = s.slotRepo.Exist(ctx, shared.FilterByID(slotID, roomModel.FieldSlotID, roomModel.SlotTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check time slot existence")

		return fmt.Errorf("failed to check time slot existence: %w", err)
	}

	if !exist {
		return failure.NotFound("time slot not found") // nolint:wrapcheck
	}

	return nil
}

// ensureOwnership lets staff and admin act on any application while plain
// users are limited to their own.
func (s *serviceImpl) ensureOwnership(ctx context.Context, application model.Application) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleStaff || role == constant.RoleAdmin {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if application.ApplicantID != user {
		return failure.Forbidden("application belongs to another user") // nolint:wrapcheck
	}

	return nil
}

// afterCommit publishes the event and invalidates the affected caches in
// a detached goroutine. Failures here are logged and never surfaced; the
// state change has already been committed.
func (s *serviceImpl) afterCommit(ctx context.Context, event events.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatcher.Dispatch(c, event)

		shared.InvalidateCaches(c, s.cache, cacheAvailability)
		shared.InvalidateCaches(c, s.cache, cacheGetAllApplication)
		shared.InvalidateCaches(c, s.cache, cacheCountApplication)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetApplication, event.ApplicationID))
	}()
}

func earliestActiveDate(usages []model.Usage) (time.Time, bool) {
	var earliest time.Time

	found := false

	for _, usage := range usages {
		if usage.Status == model.StatusCancelled {
			continue
		}

		day := timezone.DateOnly(usage.UsageDate)
		if !found || day.Before(earliest) {
			earliest = day
			found = true
		}
	}

	return earliest, found
}

// daysBetween counts calendar days from a to b at date-only precision.
func daysBetween(a, b time.Time) int {
	a = timezone.DateOnly(a)
	b = timezone.DateOnly(b)

	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}
