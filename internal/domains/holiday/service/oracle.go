package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"facil/internal/domains/holiday/model"
	"facil/shared/constant"
	"facil/shared/timezone"
)

// IsUnavailable reports whether the room cannot be booked on the date.
// A date is unavailable when it falls on a weekend, matches a registered
// holiday (exact date or a recurring month/day), or carries a closed-date
// record for the facility or the room.
func (s *serviceImpl) IsUnavailable(ctx context.Context, roomID string, date time.Time) (bool, error) {
	result, err := s.CheckMany(ctx, roomID, []time.Time{date})
	if err != nil {
		return false, err
	}

	return result[timezone.DateOnly(date).Format(constant.DateOnlyFormat)], nil
}

// CheckMany answers IsUnavailable for a batch of dates with two queries,
// one for holidays covering the range and one for closed dates. Results
// are keyed by the date formatted as YYYY-MM-DD.
func (s *serviceImpl) CheckMany(ctx context.Context, roomID string, dates []time.Time) (res map[string]bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckMany")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = make(map[string]bool, len(dates))
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

	holidays, err := s.repo.ListCovering(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to list holidays")

		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	closures, err := s.closedRepo.ListBetween(ctx, roomID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to list closed dates")

		return nil, fmt.Errorf("failed to list closed dates: %w", err)
	}

	closedSet := make(map[string]struct{}, len(closures))
	for _, closure := range closures {
		closedSet[timezone.DateOnly(closure.Date).Format(constant.DateOnlyFormat)] = struct{}{}
	}

	for _, date := range dates {
		day := timezone.DateOnly(date)
		key := day.Format(constant.DateOnlyFormat)

		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			res[key] = true

			continue
		}

		if _, ok := closedSet[key]; ok {
			res[key] = true

			continue
		}

		res[key] = matchesHoliday(holidays, day)
	}

	return res, nil
}

func matchesHoliday(holidays []model.Holiday, day time.Time) bool {
	for _, holiday := range holidays {
		holidayDay := timezone.DateOnly(holiday.Date)

		if holidayDay.Equal(day) {
			return true
		}

		if holiday.Recurring && holidayDay.Month() == day.Month() && holidayDay.Day() == day.Day() {
			return true
		}
	}

	return false
}
