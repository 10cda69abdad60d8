package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"facil/config"
	"facil/infras/otel"
	"facil/internal/domains/holiday/model"
	"facil/internal/domains/holiday/model/dto"
	"facil/internal/domains/holiday/repository"
	"facil/shared"
	"facil/shared/cache"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
	gRepo "facil/shared/repository"
	"facil/shared/timezone"
)

const (
	cacheGetAllHoliday    = "holiday:gets"
	cacheCountHoliday     = "holiday:count"
	cacheGetAllClosedDate = "closed_date:gets"
	cacheCountClosedDate  = "closed_date:count"

	// Month availability entries cached by the reservation service are
	// keyed under this prefix and go stale whenever the holiday or
	// closure calendar changes.
	cacheAvailability = "availability"
)

type Holiday interface {
	Create(ctx context.Context, req dto.CreateHolidayRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHolidaysResponse, error)
	Delete(ctx context.Context, id string) error
	BulkRegisterYear(ctx context.Context, req dto.BulkRegisterRequest) (dto.BulkRegisterResponse, error)
	CreateClosedDate(ctx context.Context, req dto.CreateClosedDateRequest) error
	GetClosedDates(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClosedDatesResponse, error)
	DeleteClosedDate(ctx context.Context, id string) error
	IsUnavailable(ctx context.Context, roomID string, date time.Time) (bool, error)
	CheckMany(ctx context.Context, roomID string, dates []time.Time) (map[string]bool, error)
}

type serviceImpl struct {
	repo       repository.Holiday
	closedRepo repository.ClosedDate
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Holiday, closedRepo repository.ClosedDate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Holiday {
	return &serviceImpl{
		repo:       repo,
		closedRepo: closedRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHolidayRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	holiday, err := req.ToModel(user)
	if err != nil {
		return err
	}

	exist, err := s.repo.Exist(ctx, filterByDate(holiday.Date))
	if err != nil {
		log.Error().Err(err).Msg("failed to check holiday existence")

		return fmt.Errorf("failed to check holiday existence: %w", err)
	}

	if exist {
		return failure.DuplicateHoliday(fmt.Sprintf("a holiday already exists on %s", req.Date)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, holiday); err != nil {
		// A concurrent create can slip past the existence check and
		// lose on the holiday_date unique constraint instead.
		if gRepo.IsUniqueViolation(err) {
			return failure.DuplicateHoliday(fmt.Sprintf("a holiday already exists on %s", req.Date)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create holiday")

		return fmt.Errorf("failed to create holiday: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHoliday)
		shared.InvalidateCaches(c, s.cache, cacheCountHoliday)
		shared.InvalidateCaches(c, s.cache, cacheAvailability)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHolidaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllHolidays")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHoliday, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for holidays")

		return res, nil
	}

	total, err := s.countHolidays(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get holidays")

		return res, fmt.Errorf("failed to get holidays: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save holidays to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) countHolidays(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHoliday, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count holidays")

		return res, fmt.Errorf("failed to count holidays: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save holiday count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHoliday")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check holiday existence")

		return fmt.Errorf("failed to check holiday existence: %w", err)
	}

	if !exist {
		return failure.NotFound("holiday not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete holiday")

		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHoliday)
		shared.InvalidateCaches(c, s.cache, cacheCountHoliday)
		shared.InvalidateCaches(c, s.cache, cacheAvailability)
	}()

	return nil
}

// BulkRegisterYear inserts the curated holidays of one calendar year.
// Dates that already carry a holiday are skipped and reported, never
// treated as errors, so re-running a year is idempotent.
func (s *serviceImpl) BulkRegisterYear(ctx context.Context, req dto.BulkRegisterRequest) (res dto.BulkRegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BulkRegisterYear")
	defer scope.End()
	defer scope.TraceIfError(err)

	entries, ok := nationalHolidays[req.Year]
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("no curated holiday calendar for year %d", req.Year)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	res.Errors = []string{}

	for _, entry := range entries {
		date := time.Date(req.Year, time.Month(entry.Month), entry.Day, 0, 0, 0, 0, timezone.GetLocation())

		exist, err := s.repo.Exist(ctx, filterByDate(date))
		if err != nil {
			log.Error().Err(err).Msg("failed to check holiday existence")

			return res, fmt.Errorf("failed to check holiday existence: %w", err)
		}

		if exist {
			res.Skipped++

			continue
		}

		holiday := dto.CreateHolidayRequest{
			Date: date.Format(constant.DateOnlyFormat),
			Name: entry.Name,
		}

		mod, err := holiday.ToModel(user)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", holiday.Date, err))

			continue
		}

		if err := s.repo.Insert(ctx, mod); err != nil {
			if gRepo.IsUniqueViolation(err) {
				res.Skipped++

				continue
			}

			log.Error().Err(err).Str("date", holiday.Date).Msg("failed to insert holiday")
			res.Errors = append(res.Errors, fmt.Sprintf("%s: insert failed", holiday.Date))

			continue
		}

		res.Created++
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHoliday)
		shared.InvalidateCaches(c, s.cache, cacheCountHoliday)
		shared.InvalidateCaches(c, s.cache, cacheAvailability)
	}()

	return res, nil
}

func (s *serviceImpl) CreateClosedDate(ctx context.Context, req dto.CreateClosedDateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateClosedDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	closedDate, err := req.ToModel(user)
	if err != nil {
		return err
	}

	if err = s.closedRepo.Insert(ctx, closedDate); err != nil {
		log.Error().Err(err).Msg("failed to create closed date")

		return fmt.Errorf("failed to create closed date: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClosedDate)
		shared.InvalidateCaches(c, s.cache, cacheCountClosedDate)
		shared.InvalidateCaches(c, s.cache, cacheAvailability)
	}()

	return nil
}

func (s *serviceImpl) GetClosedDates(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClosedDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetClosedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClosedDate, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for closed dates")

		return res, nil
	}

	total, err := s.closedRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count closed dates")

		return res, fmt.Errorf("failed to count closed dates: %w", err)
	}

	models, err := s.closedRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get closed dates")

		return res, fmt.Errorf("failed to get closed dates: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save closed dates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteClosedDate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteClosedDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldClosedDateID, model.ClosedDateTableName)

	exist, err := s.closedRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check closed date existence")

		return fmt.Errorf("failed to check closed date existence: %w", err)
	}

	if !exist {
		return failure.NotFound("closed date not found") // nolint:wrapcheck
	}

	if err = s.closedRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete closed date")

		return fmt.Errorf("failed to delete closed date: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClosedDate)
		shared.InvalidateCaches(c, s.cache, cacheCountClosedDate)
		shared.InvalidateCaches(c, s.cache, cacheAvailability)
	}()

	return nil
}

func filterByDate(date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
		},
	}
}
