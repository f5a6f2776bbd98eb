package reservation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var errFakeDB = errors.New("fake db")

// recordingDB запоминает последний запрос и всегда возвращает ошибку
type recordingDB struct {
	query string
	args  []interface{}
}

func (d *recordingDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	d.query, d.args = query, args
	return nil, errFakeDB
}

func (d *recordingDB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	d.query, d.args = query, args
	return nil, errFakeDB
}

func (d *recordingDB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	d.query, d.args = query, args
	return &sql.Row{}
}

type recordingTx struct {
	recordingDB
}

func (t *recordingTx) Commit() error   { return nil }
func (t *recordingTx) Rollback() error { return nil }

func TestList_ExactSlotQuery(t *testing.T) {
	db := &recordingDB{}
	repo := NewRepository(db)

	date := time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)
	slot := types.TimeString("18:00")
	exclude := int64(42)

	_, err := repo.List(context.Background(), domain.ReservationFilter{
		StoreID:   "store-1",
		Date:      &date,
		Time:      &slot,
		ExcludeID: &exclude,
	})

	require.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, db.query, "store_id = $1")
	assert.Contains(t, db.query, "reservation_date = $2")
	assert.Contains(t, db.query, "reservation_time = $3")
	assert.Contains(t, db.query, "id <> $4")
	assert.Contains(t, db.query, "status <> $5")
	assert.NotContains(t, db.query, "FOR UPDATE")
	// squirrel.Eq раскрывает driver.Valuer, время слота уходит в драйвер строкой
	assert.Equal(t, []interface{}{"store-1", date, "18:00", exclude, domain.StatusCancelled}, db.args)
}

func TestList_LocksSlotInsideTransaction(t *testing.T) {
	tx := &recordingTx{}
	repo := NewRepository(&recordingDB{})

	date := time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)
	slot := types.TimeString("18:00")
	ctx := dbmetrics.WithTx(context.Background(), tx)

	_, _ = repo.List(ctx, domain.ReservationFilter{StoreID: "store-1", Date: &date, Time: &slot})

	assert.Contains(t, tx.query, "FOR UPDATE")
}

func TestList_IncludeCancelled(t *testing.T) {
	db := &recordingDB{}
	repo := NewRepository(db)

	_, _ = repo.List(context.Background(), domain.ReservationFilter{StoreID: "store-1", IncludeCancelled: true})

	assert.NotContains(t, db.query, "status <>")
}

func TestCancel_ExecError(t *testing.T) {
	db := &recordingDB{}
	repo := NewRepository(db)

	err := repo.Cancel(context.Background(), 7)

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, db.query, "UPDATE reservations SET status = $1, cancelled_at = NOW()")
}
