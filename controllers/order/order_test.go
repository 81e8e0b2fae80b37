package orderControllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaban-saad/nextgen-circuits-api/courier"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// countingCourier points a real client at a stub provider and counts
// every HTTP call it receives.
func countingCourier(t *testing.T, calls *int32) *courier.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
	}))
	t.Cleanup(srv.Close)
	return courier.NewClient(courier.Config{
		BaseURL:      srv.URL,
		ClientID:     "id",
		ClientSecret: "secret",
		StoreID:      "s1",
	})
}

func performDispatch(t *testing.T, db *gorm.DB, client *courier.Client) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/orders/:orderID/dispatch", DispatchOrderHandler(db, client))

	req := httptest.NewRequest(http.MethodPost, "/admin/orders/42/dispatch", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "order_ref", "user_id", "total", "status", "payment_status"}).
		AddRow(42, "20260829120000-abc", "u1", 260.0, "confirmed", "pending")
}

func TestDispatchOrderStateCheckFailureSkipsCourier(t *testing.T) {
	// a transient read failure on the dispatch-state check must not be
	// mistaken for "not dispatched" and issue a duplicate consignment
	gormDB, mock := setupMockDB(t)
	var calls int32
	client := countingCourier(t, &calls)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRows())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_name"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_details"`)).
		WillReturnError(errors.New("connection reset by peer"))

	w := performDispatch(t, gormDB, client)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatchOrderAlreadyDispatched(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	var calls int32
	client := countingCourier(t, &calls)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRows())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_name"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_details"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "consignment_id", "tracking_code"}).
			AddRow(1, 42, "CON-1", "TRK-1"))

	w := performDispatch(t, gormDB, client)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already dispatched")
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatchOrderNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	var calls int32
	client := countingCourier(t, &calls)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performDispatch(t, gormDB, client)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
	assert.NoError(t, mock.ExpectationsWereMet())
}
