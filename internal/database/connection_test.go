package database

import (
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolQueuesWhenExhausted(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	// Pool de 2 conexiones con 5 peticiones concurrentes: las que exceden
	// la capacidad esperan una conexión libre en vez de fallar.
	conn.SetMaxOpenConns(2)
	db := &DB{conn}

	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT id FROM clients").
			WillDelayFor(20 * time.Millisecond).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, cancel, err := db.QueryWithTimeout("SELECT id FROM clients")
			if err == nil {
				rows.Close()
				cancel()
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryWithTimeoutAllowsRowIteration(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	db := &DB{conn}

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3)
	mock.ExpectQuery("SELECT id FROM clients").WillReturnRows(rows)

	result, cancel, err := db.QueryWithTimeout("SELECT id FROM clients")
	require.NoError(t, err)
	defer cancel()
	defer result.Close()

	// El contexto sigue vivo mientras se consumen las filas
	var ids []int
	for result.Next() {
		var id int
		require.NoError(t, result.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, result.Err())
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestWithTransactionCommits(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	db := &DB{conn}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE clients").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE clients SET paid = FALSE;")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransactionRollsBack(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	db := &DB{conn}

	mock.ExpectBegin()
	mock.ExpectRollback()

	storeErr := errors.New("store rejected it")
	err = db.WithTransaction(func(tx *sql.Tx) error {
		return storeErr
	})
	assert.ErrorIs(t, err, storeErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	db := &DB{conn}

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	assert.NoError(t, db.HealthCheck())
}
