package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"facil/infras/otel"
	"facil/infras/postgres"
	"facil/internal/domains/holiday/model"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/logger"
	gRepo "facil/shared/repository"
)

type Holiday interface {
	Insert(ctx context.Context, model model.Holiday) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Holiday, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Holiday, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListCovering(ctx context.Context, from, to time.Time) ([]model.Holiday, error)
}

type ClosedDate interface {
	Insert(ctx context.Context, model model.ClosedDate) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ClosedDate, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListBetween(ctx context.Context, roomID string, from, to time.Time) ([]model.ClosedDate, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Holiday]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Holiday {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Holiday](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListCovering returns the holidays that can affect any date in [from, to]:
// exact dates inside the range plus every recurring holiday, whose month/day
// repeats across years and must be matched in memory.
func (repo *repositoryImpl) ListCovering(ctx context.Context, from, to time.Time) ([]model.Holiday, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".holiday.ListCovering")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE (%s BETWEEN $1 AND $2) OR %s = TRUE",
		model.TableName, model.FieldDate, model.FieldRecurring,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	holidays := []model.Holiday{}

	if err := repo.db.Read.SelectContext(ctx, &holidays, query, from, to); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list covering (%s): %w", model.EntityName, err)
	}

	return holidays, nil
}

type closedDateRepositoryImpl struct {
	gRepo.Repository[model.ClosedDate]
	db   *postgres.Connection
	otel otel.Otel
}

func NewClosedDate(db *postgres.Connection, otel otel.Otel) ClosedDate {
	return &closedDateRepositoryImpl{
		Repository: gRepo.NewRepository[model.ClosedDate](model.ClosedDateEntityName, model.ClosedDateTableName, model.FieldClosedDateID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListBetween returns closures that apply to the room in [from, to],
// including facility-wide rows where room_id is NULL.
func (repo *closedDateRepositoryImpl) ListBetween(ctx context.Context, roomID string, from, to time.Time) ([]model.ClosedDate, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".closed_date.ListBetween")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s BETWEEN $1 AND $2 AND (%s IS NULL OR %s = $3)",
		model.ClosedDateTableName, model.FieldClosedDateDate, model.FieldClosedDateRoomID, model.FieldClosedDateRoomID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	closures := []model.ClosedDate{}

	if err := repo.db.Read.SelectContext(ctx, &closures, query, from, to, roomID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list between (%s): %w", model.ClosedDateEntityName, err)
	}

	return closures, nil
}
