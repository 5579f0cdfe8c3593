package disabledday

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, errors.New("not supported") }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

type fakeDB struct {
	query    string
	args     []interface{}
	affected int64
	err      error
}

func (f *fakeDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query = query
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return fakeResult{affected: f.affected}, nil
}

func (f *fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestDelete(t *testing.T) {
	db := &fakeDB{affected: 1}
	repo := NewRepository(db)

	require.NoError(t, repo.Delete(context.Background(), "d-1"))
	assert.Equal(t, "DELETE FROM disabled_days WHERE id = $1", db.query)
	assert.Equal(t, []interface{}{"d-1"}, db.args)
}

func TestDelete_NotFound(t *testing.T) {
	repo := NewRepository(&fakeDB{affected: 0})

	err := repo.Delete(context.Background(), "d-1")
	assert.ErrorIs(t, err, ErrDisabledDayNotFound)
}

func TestDelete_ExecError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := NewRepository(&fakeDB{err: boom})

	err := repo.Delete(context.Background(), "d-1")
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, boom)
}
