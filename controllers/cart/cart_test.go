package cartControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func performUpsert(t *testing.T, db *gorm.DB, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/cart", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	}, UpsertCartEntry(db))

	req := httptest.NewRequest(http.MethodPost, "/user/cart", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func productRows(stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "sku", "price", "weight_kg", "stock"}).
		AddRow(7, "ATmega328P Dev Board", "NGC-0007", 100.0, 0.05, stock)
}

func TestUpsertCartEntryRejectsQuantityOverStock(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRows(3))

	w := performUpsert(t, gormDB, "u1", `{"product_id":7,"quantity":5}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds available stock")
	// the product lookup was the only statement issued: no cart row was
	// read or written
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCartEntryCreatesWithinStock(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRows(10))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cart_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cart_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := performUpsert(t, gormDB, "u1", `{"product_id":7,"quantity":2}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCartEntryReplacesExistingQuantity(t *testing.T) {
	// the stock bound applies to the requested quantity on updates too;
	// 6 of 10 passes and overwrites the previous quantity of 2
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRows(10))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cart_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity"}).
			AddRow(5, "u1", 7, 2))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cart_entries"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performUpsert(t, gormDB, "u1", `{"product_id":7,"quantity":6}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCartEntryUnknownProduct(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performUpsert(t, gormDB, "u1", `{"product_id":99,"quantity":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}
