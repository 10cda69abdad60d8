package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"facil/infras/otel"
	"facil/infras/postgres"
	"facil/internal/domains/room/model"
	"facil/shared/constant"
	gDto "facil/shared/dto"
	"facil/shared/logger"
	gRepo "facil/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type TimeSlot interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TimeSlot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimeSlot, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type SlotPrice interface {
	GetPrice(ctx context.Context, roomID, slotID string) (int, bool, error)
	GetByRoom(ctx context.Context, roomID string) ([]model.RoomSlotPrice, error)
	Replace(ctx context.Context, roomID string, prices []model.RoomSlotPrice) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type slotRepositoryImpl struct {
	gRepo.Repository[model.TimeSlot]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTimeSlot(db *postgres.Connection, otel otel.Otel) TimeSlot {
	return &slotRepositoryImpl{
		Repository: gRepo.NewRepository[model.TimeSlot](model.SlotEntityName, model.SlotTableName, model.FieldSlotID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type slotPriceRepositoryImpl struct {
	gRepo.Repository[model.RoomSlotPrice]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSlotPrice(db *postgres.Connection, otel otel.Otel) SlotPrice {
	return &slotPriceRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomSlotPrice](model.PriceEntityName, model.PriceTableName, model.FieldPriceRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetPrice looks up one cell of the price table. The second return value
// reports whether the room offers the slot at all.
func (repo *slotPriceRepositoryImpl) GetPrice(ctx context.Context, roomID, slotID string) (int, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_slot_price.GetPrice")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 AND %s = $2",
		model.FieldPrice, model.PriceTableName, model.FieldPriceRoomID, model.FieldPriceSlotID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var price int

	err := repo.db.Read.GetContext(ctx, &price, query, roomID, slotID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, false, fmt.Errorf("failed to get price (%s): %w", model.PriceEntityName, err)
	}

	return price, true, nil
}

func (repo *slotPriceRepositoryImpl) GetByRoom(ctx context.Context, roomID string) ([]model.RoomSlotPrice, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPriceRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.PriceTableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter)
}

// Replace swaps the room's price rows for the given set in one transaction.
func (repo *slotPriceRepositoryImpl) Replace(ctx context.Context, roomID string, prices []model.RoomSlotPrice) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_slot_price.Replace")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPriceRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.PriceTableName,
			},
		},
	}

	return gRepo.Transact(ctx, repo.db, func(tx *sqlx.Tx) error {
		if err := repo.DeleteTx(ctx, tx, filter); err != nil {
			return err
		}

		return repo.InsertBulkTx(ctx, tx, prices)
	})
}
