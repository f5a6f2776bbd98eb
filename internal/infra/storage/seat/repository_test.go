package seat

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type recordingDB struct {
	query string
	args  []interface{}
}

func (d *recordingDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	d.query, d.args = query, args
	return nil, errors.New("fake db")
}

func (d *recordingDB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	d.query, d.args = query, args
	return nil, errors.New("fake db")
}

func (d *recordingDB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	d.query, d.args = query, args
	return &sql.Row{}
}

func TestList_AvailableSeatsQuery(t *testing.T) {
	db := &recordingDB{}
	repo := NewRepository(db)

	_, err := repo.List(context.Background(), domain.SeatFilter{
		StoreID:       "store-1",
		MinCapacity:   2,
		OnlyAvailable: true,
		ExcludeIDs:    []int64{3, 5},
	})

	require.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, db.query, "is_active = $2 AND is_locked = $3")
	assert.Contains(t, db.query, "capacity >= $4")
	assert.Contains(t, db.query, "id NOT IN ($5,$6)")
	assert.Contains(t, db.query, "ORDER BY capacity ASC, display_order ASC, id ASC")
}

func TestList_AllSeats(t *testing.T) {
	db := &recordingDB{}
	repo := NewRepository(db)

	_, _ = repo.List(context.Background(), domain.SeatFilter{StoreID: "store-1"})

	assert.NotContains(t, db.query, "is_locked =")
	assert.NotContains(t, db.query, "capacity >=")
	assert.Equal(t, []interface{}{"store-1"}, db.args)
}
