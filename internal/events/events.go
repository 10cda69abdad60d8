package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"facil/config"
	"facil/infras/kafka"
	"facil/shared/timezone"
)

const (
	ReservationCreated   = "reservation.created"
	ReservationApproved  = "reservation.approved"
	ReservationRejected  = "reservation.rejected"
	ReservationCancelled = "reservation.cancelled"
	ReservationPaid      = "reservation.paid"
	ReservationCompleted = "reservation.completed"
	ReservationModified  = "reservation.modified"
)

// Event is the notification payload published after a reservation
// state change has been committed.
type Event struct {
	Code          string `json:"code"`
	ApplicationID string `json:"application_id"`
	ApplicantID   string `json:"applicant_id"`
	RoomID        string `json:"room_id"`
	Detail        string `json:"detail,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}

// Dispatcher publishes reservation events. Dispatch is fire-and-forget:
// callers invoke it after the state change is committed, and a failed
// publish is logged but never propagated back to the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

type kafkaDispatcher struct {
	client kafka.Client
	cfg    *config.Config
}

func NewDispatcher(client kafka.Client, cfg *config.Config) Dispatcher {
	return &kafkaDispatcher{
		client: client,
		cfg:    cfg,
	}
}

func (d *kafkaDispatcher) Dispatch(ctx context.Context, event Event) {
	if event.OccurredAt == "" {
		event.OccurredAt = timezone.Now().Format(time.RFC3339)
	}

	message := kafka.Message{
		Key:   event.ApplicationID,
		Value: event,
	}

	if err := d.client.SendMessages(ctx, d.cfg.Kafka.EventTopic, message); err != nil {
		log.Error().Err(err).Str("code", event.Code).Str("application_id", event.ApplicationID).Msg("failed to dispatch reservation event")
	}
}
