package seat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов (sql.DB, транзакция или dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor

const table = "seats"

var columns = []string{
	"id",
	"store_id",
	"name",
	"capacity",
	"is_active",
	"is_locked",
	"display_order",
	"created_at",
	"updated_at",
}

// Repository реестр мест магазина
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает место по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	seat, err := scanSeat(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSeatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan seat: %v", ErrScanRow, err)
	}

	return seat, nil
}

// List получает места магазина, отсортированные по (capacity ASC, display_order ASC)
// Такой порядок дает подбору места "наименьший подходящий стол первым"
func (r *Repository) List(ctx context.Context, filter domain.SeatFilter) ([]*domain.Seat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"store_id": filter.StoreID})

	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true, "is_locked": false})
	}
	if filter.MinCapacity > 0 {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": filter.MinCapacity})
	}
	if len(filter.ExcludeIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": filter.ExcludeIDs})
	}

	query, args, err := selectBuilder.
		OrderBy("capacity ASC", "display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	seats := make([]*domain.Seat, 0)
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return seats, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSeat(row rowScanner) (*domain.Seat, error) {
	var seat domain.Seat
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&seat.ID,
		&seat.StoreID,
		&seat.Name,
		&seat.Capacity,
		&seat.IsActive,
		&seat.IsLocked,
		&seat.DisplayOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	seat.CreatedAt = createdAt.Time
	seat.UpdatedAt = updatedAt.Time

	return &seat, nil
}
