// SPDX-License-Identifier: Apache-2.0

package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/sarychelek/kiosk/internal/logger"
)

func newTestSQLiteKV(t *testing.T) (*SQLiteKV, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return &SQLiteKV{db: db, logger: logger.Nop()}, mock, db
}

func TestSQLiteKV_Get_Present(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("kg")
	mock.ExpectQuery("SELECT value FROM slots").
		WithArgs("language").
		WillReturnRows(rows)

	v, ok := kv.Get("language")
	if !ok || v != "kg" {
		t.Fatalf("expected (kg, true), got (%q, %v)", v, ok)
	}
}

func TestSQLiteKV_Get_Absent(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM slots").
		WithArgs("language").
		WillReturnError(sql.ErrNoRows)

	if _, ok := kv.Get("language"); ok {
		t.Fatal("expected absence for a missing row")
	}
}

func TestSQLiteKV_Get_BackendErrorBehavesLikeAbsence(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM slots").
		WithArgs("language").
		WillReturnError(errors.New("disk I/O error"))

	if _, ok := kv.Get("language"); ok {
		t.Fatal("a failing read must behave like an absent key")
	}
}

func TestSQLiteKV_Set(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO slots").
		WithArgs("language", "ru").
		WillReturnResult(sqlmock.NewResult(1, 1))

	kv.Set("language", "ru")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteKV_Set_BackendErrorIsSwallowed(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO slots").
		WithArgs("language", "ru").
		WillReturnError(errors.New("database is locked"))

	// Must not panic and must not surface the error.
	kv.Set("language", "ru")
}

func TestSQLiteKV_Remove(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM slots").
		WithArgs("currentUser").
		WillReturnResult(sqlmock.NewResult(0, 1))

	kv.Remove("currentUser")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
