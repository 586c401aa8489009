package database

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/soluciones-it/billing-service/internal/models"
)

func newTestPaymentRepo(t *testing.T) (*PaymentRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewPaymentRepository(&DB{conn}, logger), mock
}

func TestPaymentList(t *testing.T) {
	repo, mock := newTestPaymentRepo(t)

	datePayment := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "identification", "phone", "amount", "date_payment", "type"}).
		AddRow(1, "Juan Perez", "101110111", "88887777", 25000.0, datePayment, "Sinpe movil").
		AddRow(2, "Maria Rojas", "202220222", "89998888", 18000.0, datePayment, "Efectivo")

	mock.ExpectQuery("SELECT (.+) FROM paids").WillReturnRows(rows)

	paids, err := repo.List()
	require.NoError(t, err)
	require.Len(t, paids, 2)

	assert.Equal(t, 1, paids[0].ID)
	assert.Equal(t, "Sinpe movil", *paids[0].Type)
	assert.Equal(t, datePayment, *paids[0].DatePayment)
	assert.Equal(t, "Efectivo", *paids[1].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentListEmptyAfterClean(t *testing.T) {
	repo, mock := newTestPaymentRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM paids").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "identification", "phone", "amount", "date_payment", "type"}))

	paids, err := repo.List()
	require.NoError(t, err)
	assert.NotNil(t, paids)
	assert.Empty(t, paids)
}

func TestPaymentInsert(t *testing.T) {
	repo, mock := newTestPaymentRepo(t)

	req := &models.InsertPaymentRequest{
		IDClient: intPtr(7),
		Date:     strPtr("2024-03-15"),
		Type:     strPtr("Sinpe movil"),
	}

	mock.ExpectBegin()
	mock.ExpectExec("SELECT insert_payment").
		WithArgs(7, "2024-03-15", "Sinpe movil").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Insert(req)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentInsertUnknownClientSurfacesStoreError(t *testing.T) {
	repo, mock := newTestPaymentRepo(t)

	// El servicio no verifica la existencia del cliente; el error viene
	// de la base de datos.
	mock.ExpectBegin()
	mock.ExpectExec("SELECT insert_payment").
		WithArgs(999, "2024-03-15", "Efectivo").
		WillReturnError(errors.New("foreign key violation"))
	mock.ExpectRollback()

	err := repo.Insert(&models.InsertPaymentRequest{
		IDClient: intPtr(999),
		Date:     strPtr("2024-03-15"),
		Type:     strPtr("Efectivo"),
	})
	assert.ErrorContains(t, err, "error inserting payment")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCleanAll(t *testing.T) {
	repo, mock := newTestPaymentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT delete_all_payments").
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectCommit()

	err := repo.CleanAll()
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCleanAllError(t *testing.T) {
	repo, mock := newTestPaymentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT delete_all_payments").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.CleanAll()
	assert.ErrorContains(t, err, "error cleaning payments")
}
