package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"facil/shared/constant"
	"facil/shared/failure"
)

// computeTotal prices an application: the room's slot price per requested
// date plus the flat air-conditioning surcharge per requested hour, all in
// whole yen. Later edits to the actual AC hours are billed separately and
// never reprice the committed total.
func (s *serviceImpl) computeTotal(ctx context.Context, roomID, slotID string, dates []time.Time, acHours int) (int, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".computeTotal")
	defer scope.End()

	price, ok, err := s.priceRepo.GetPrice(ctx, roomID, slotID)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up slot price")

		return 0, fmt.Errorf("failed to look up slot price: %w", err)
	}

	if !ok {
		return 0, failure.BadRequestFromString("no price is configured for the requested room and time slot") // nolint:wrapcheck
	}

	return price*len(dates) + acHours*s.cfg.Reservation.ACHourPrice, nil
}
