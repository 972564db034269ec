// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertAccountQuery_Placeholders(t *testing.T) {
	account := testAccount(t)

	query, args, err := buildInsertAccountQuery(dollar, account)
	require.NoError(t, err)
	assert.Contains(t, query, "$5")
	assert.Len(t, args, 5)

	query, _, err = buildInsertAccountQuery(question, account)
	require.NoError(t, err)
	assert.NotContains(t, query, "$")
	assert.Equal(t, 5, strings.Count(query, "?"))
}

func Test_buildInsertAccountQuery_DoesNotWriteID(t *testing.T) {
	account := testAccount(t)
	account.ID = 42

	query, args, err := buildInsertAccountQuery(dollar, account)
	require.NoError(t, err)

	insertPart := strings.SplitN(query, "RETURNING", 2)[0]
	assert.NotContains(t, insertPart, "id,")
	assert.NotContains(t, args, int64(42))
}

func Test_returningAccountColumns(t *testing.T) {
	assert.Equal(t, "RETURNING id, name, email, address, phone_number, date_joined", returningAccountColumns())
}

func Test_buildUpdateAccountQuery_WhereIDIsLast(t *testing.T) {
	account := testAccount(t)
	account.ID = 3

	query, args, err := buildUpdateAccountQuery(dollar, account)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE id = $6")
	require.Len(t, args, 6)
	assert.Equal(t, int64(3), args[5])
}

func Test_buildSelectAllAccountsQuery_OrderedByID(t *testing.T) {
	query, args, err := buildSelectAllAccountsQuery(dollar)
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "ORDER BY id"))
}

func Test_buildDeleteAccountQuery(t *testing.T) {
	query, args, err := buildDeleteAccountQuery(question, 8)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM accounts WHERE id = ?", query)
	assert.Equal(t, []any{int64(8)}, args)
}
