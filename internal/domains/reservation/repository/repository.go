package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"facil/infras/otel"
	"facil/infras/postgres"
	"facil/internal/domains/reservation/model"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/failure"
	"facil/shared/logger"
	gRepo "facil/shared/repository"
)

type Application interface {
	CreateWithUsages(ctx context.Context, application model.Application, usages []model.Usage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Application, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Application, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateWithUsages(ctx context.Context, applicationID string, applicationFields, usageFields map[string]any) error
}

type Usage interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Usage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Usage, error)
	ByApplication(ctx context.Context, applicationID string) ([]model.Usage, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ListBooked(ctx context.Context, roomID, slotID string, from, to time.Time) ([]model.Usage, error)
}

type applicationRepositoryImpl struct {
	gRepo.Repository[model.Application]
	usages gRepo.Repository[model.Usage]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Application {
	return &applicationRepositoryImpl{
		Repository: gRepo.NewRepository[model.Application](model.EntityName, model.TableName, model.FieldID, db, otel),
		usages:     gRepo.NewRepository[model.Usage](model.UsageEntityName, model.UsageTableName, model.FieldUsageID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithUsages inserts the application and its usage rows in one
// transaction. A unique violation on (room_id, usage_date, slot_id) means
// another booking won the race and is surfaced as a retryable conflict.
func (repo *applicationRepositoryImpl) CreateWithUsages(ctx context.Context, application model.Application, usages []model.Usage) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".application.CreateWithUsages")
	defer scope.End()

	err := gRepo.Transact(ctx, repo.db, func(tx *sqlx.Tx) error {
		if err := repo.InsertTx(ctx, tx, application); err != nil {
			return err
		}

		return repo.usages.InsertBulkTx(ctx, tx, usages)
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.AvailabilityConflict("one or more requested dates were booked by another application") // nolint:wrapcheck
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to create application with usages: %w", err)
	}

	return nil
}

// UpdateWithUsages applies one field set to the application row and
// another to all of its usage rows inside a single transaction.
func (repo *applicationRepositoryImpl) UpdateWithUsages(ctx context.Context, applicationID string, applicationFields, usageFields map[string]any) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".application.UpdateWithUsages")
	defer scope.End()

	applicationFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    applicationID,
				Table:    model.TableName,
			},
		},
	}

	usageFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsageApplicationID,
				Operator: gDto.FilterOperatorEq,
				Value:    applicationID,
				Table:    model.UsageTableName,
			},
		},
	}

	err := gRepo.Transact(ctx, repo.db, func(tx *sqlx.Tx) error {
		if err := repo.UpdateTx(ctx, tx, applicationFields, applicationFilter); err != nil {
			return err
		}

		if len(usageFields) == 0 {
			return nil
		}

		return repo.usages.UpdateTx(ctx, tx, usageFields, usageFilter)
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update application with usages: %w", err)
	}

	return nil
}

type usageRepositoryImpl struct {
	gRepo.Repository[model.Usage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewUsage(db *postgres.Connection, otel otel.Otel) Usage {
	return &usageRepositoryImpl{
		Repository: gRepo.NewRepository[model.Usage](model.UsageEntityName, model.UsageTableName, model.FieldUsageID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *usageRepositoryImpl) ByApplication(ctx context.Context, applicationID string) ([]model.Usage, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsageApplicationID,
				Operator: gDto.FilterOperatorEq,
				Value:    applicationID,
				Table:    model.UsageTableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldUsageDate, SortDir: gDto.SortDirAsc}, filter)
}

// Update applies the fields to the matched usage rows. A date change can
// collide with another non-cancelled booking through the partial unique
// index; that collision is reported as a retryable conflict.
func (repo *usageRepositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	err := repo.Repository.Update(ctx, req, filter)
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.AvailabilityConflict("the requested date is already booked") // nolint:wrapcheck
		}

		return err //nolint:wrapcheck
	}

	return nil
}

// ListBooked returns the non-cancelled usages of a room and slot whose
// dates fall in [from, to].
func (repo *usageRepositoryImpl) ListBooked(ctx context.Context, roomID, slotID string, from, to time.Time) ([]model.Usage, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".usage.ListBooked")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1 AND %s = $2 AND %s BETWEEN $3 AND $4 AND %s <> $5",
		model.UsageTableName, model.FieldUsageRoomID, model.FieldUsageSlotID, model.FieldUsageDate, model.FieldUsageStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	booked := []model.Usage{}

	if err := repo.db.Read.SelectContext(ctx, &booked, query, roomID, slotID, from, to, model.StatusCancelled); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list booked usages: %w", err)
	}

	return booked, nil
}
