package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"facil/internal/domains/reservation/model"
	"facil/internal/domains/reservation/model/dto"
	"facil/shared"
	"facil/shared/constant"
	"facil/shared/failure"
	"facil/shared/timezone"
)

// CheckAvailability classifies each candidate date for the room and slot.
// Precedence: past, then closed (weekend/holiday/closure via the oracle),
// then booked, otherwise available. The same check runs again inside the
// create and modify paths so a stale view cannot commit.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID, slotID string, dates []time.Time) (res map[string]model.AvailabilityState, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = make(map[string]model.AvailabilityState, len(dates))
	if len(dates) == 0 {
		return res, nil
	}

	from := timezone.DateOnly(dates[0])
	to := from

	for _, date := range dates[1:] {
		day := timezone.DateOnly(date)
		if day.Before(from) {
			from = day
		}

		if day.After(to) {
			to = day
		}
	}

	unavailable, err := s.holidaySvc.CheckMany(ctx, roomID, dates)
	if err != nil {
		log.Error().Err(err).Msg("failed to consult holiday oracle")

		return nil, fmt.Errorf("failed to consult holiday oracle: %w", err)
	}

	booked, err := s.usageRepo.ListBooked(ctx, roomID, slotID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to list booked usages")

		return nil, fmt.Errorf("failed to list booked usages: %w", err)
	}

	bookedSet := make(map[string]struct{}, len(booked))
	for _, usage := range booked {
		bookedSet[timezone.DateOnly(usage.UsageDate).Format(constant.DateOnlyFormat)] = struct{}{}
	}

	today := timezone.Today()

	for _, date := range dates {
		day := timezone.DateOnly(date)
		key := day.Format(constant.DateOnlyFormat)

		switch {
		case day.Before(today):
			res[key] = model.AvailabilityPast
		case unavailable[key]:
			res[key] = model.AvailabilityClosed
		default:
			if _, ok := bookedSet[key]; ok {
				res[key] = model.AvailabilityBooked
			} else {
				res[key] = model.AvailabilityAvailable
			}
		}
	}

	return res, nil
}

// MonthAvailability renders the availability map of one calendar month.
func (s *serviceImpl) MonthAvailability(ctx context.Context, roomID, slotID, month string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	first, err := time.ParseInLocation(constant.MonthFormat, month, timezone.GetLocation())
	if err != nil {
		return res, failure.BadRequestFromString("month must be formatted as YYYY-MM") // nolint:wrapcheck
	}

	if err = s.ensureRoomAndSlot(ctx, roomID, slotID); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheAvailability, roomID, slotID, month)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	dates := []time.Time{}
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}

	states, err := s.CheckAvailability(ctx, roomID, slotID, dates)
	if err != nil {
		return res, err
	}

	res.RoomID = roomID
	res.SlotID = slotID
	res.Month = month
	res.Days = make([]dto.DayAvailability, len(dates))

	for i, date := range dates {
		key := date.Format(constant.DateOnlyFormat)
		res.Days[i] = dto.DayAvailability{Date: key, State: string(states[key])}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}
