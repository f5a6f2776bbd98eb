package rule

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

const table = "capacity_rules"

var columns = []string{
	"id",
	"store_id",
	"name",
	"date_mode",
	"rule_date",
	"start_date",
	"end_date",
	"weekday",
	"start_time",
	"end_time",
	"control_type",
	"max_groups",
	"max_people",
	"max_per_group",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил ограничения вместимости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое правило
func (r *Repository) Create(ctx context.Context, rule *domain.CapacityRule) (*domain.CapacityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"store_id",
			"name",
			"date_mode",
			"rule_date",
			"start_date",
			"end_date",
			"weekday",
			"start_time",
			"end_time",
			"control_type",
			"max_groups",
			"max_people",
			"max_per_group",
		).
		Values(
			rule.StoreID,
			rule.Name,
			rule.DateMode,
			rule.Date,
			rule.StartDate,
			rule.EndDate,
			rule.Weekday,
			rule.StartTime,
			rule.EndTime,
			rule.ControlType,
			rule.MaxGroups,
			rule.MaxPeople,
			rule.MaxPerGroup,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CapacityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// ListByStore получает все правила магазина в порядке создания
// Порядок важен: при оценке вместимости срабатывает первое запрещающее правило
func (r *Repository) ListByStore(ctx context.Context, storeID string) ([]*domain.CapacityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.CapacityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStore - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStore - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Update полностью перезаписывает правило
func (r *Repository) Update(ctx context.Context, rule *domain.CapacityRule) (*domain.CapacityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", rule.Name).
		Set("date_mode", rule.DateMode).
		Set("rule_date", rule.Date).
		Set("start_date", rule.StartDate).
		Set("end_date", rule.EndDate).
		Set("weekday", rule.Weekday).
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Set("control_type", rule.ControlType).
		Set("max_groups", rule.MaxGroups).
		Set("max_people", rule.MaxPeople).
		Set("max_per_group", rule.MaxPerGroup).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// Delete удаляет правило
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.CapacityRule, error) {
	var rule domain.CapacityRule
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.StoreID,
		&rule.Name,
		&rule.DateMode,
		&rule.Date,
		&rule.StartDate,
		&rule.EndDate,
		&rule.Weekday,
		&rule.StartTime,
		&rule.EndTime,
		&rule.ControlType,
		&rule.MaxGroups,
		&rule.MaxPeople,
		&rule.MaxPerGroup,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
