// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.UniqueViolation, ConstraintViolation},
		{pgerrcode.NotNullViolation, ConstraintViolation},
		{pgerrcode.CheckViolation, ConstraintViolation},
		{pgerrcode.StringDataRightTruncationDataException, ConstraintViolation},
		{pgerrcode.InvalidDatetimeFormat, ConstraintViolation},
		{pgerrcode.ConnectionException, ConnectionFailure},
		{pgerrcode.ConnectionFailure, ConnectionFailure},
		{pgerrcode.CannotConnectNow, ConnectionFailure},
		{pgerrcode.AdminShutdown, ConnectionFailure},
		{pgerrcode.SyntaxError, Unclassified},
		{pgerrcode.UndefinedTable, Unclassified},
		{pgerrcode.DeadlockDetected, Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Unclassified, c.Classify(nil))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))

	wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.Equal(t, ConstraintViolation, c.Classify(wrapped))
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Unclassified, c.Classify(nil))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
	assert.Equal(t, ConstraintViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, ConnectionFailure, c.Classify(fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrBusy})))
	assert.Equal(t, Unclassified, c.Classify(sqlite3.Error{Code: sqlite3.ErrError}))
}

func TestErrorClassification_StringPostgres(t *testing.T) {
	assert.Equal(t, "constraint_violation", ConstraintViolation.String())
	assert.Equal(t, "connection_failure", ConnectionFailure.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}
