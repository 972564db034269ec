package store

import (
	"strings"

	"github.com/MKhiriev/go-accounts-service/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	accountsTable = "accounts"

	columnID          = "id"
	columnName        = "name"
	columnEmail       = "email"
	columnAddress     = "address"
	columnPhoneNumber = "phone_number"
	columnDateJoined  = "date_joined"
)

// accountColumns is the column list shared by SELECT and RETURNING clauses.
// Its names match the db tags of models.Account.
var accountColumns = []string{
	columnID,
	columnName,
	columnEmail,
	columnAddress,
	columnPhoneNumber,
	columnDateJoined,
}

func returningAccountColumns() string {
	return "RETURNING " + strings.Join(accountColumns, ", ")
}

// buildInsertAccountQuery builds an INSERT that lets the store assign id.
func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.
		Insert(accountsTable).
		Columns(columnName, columnEmail, columnAddress, columnPhoneNumber, columnDateJoined).
		Values(account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined).
		Suffix(returningAccountColumns()).
		ToSql()
}

func buildSelectAccountByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

func buildSelectAllAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy(columnID).
		ToSql()
}

// buildUpdateAccountQuery replaces every mutable column of the row.
func buildUpdateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.
		Update(accountsTable).
		Set(columnName, account.Name).
		Set(columnEmail, account.Email).
		Set(columnAddress, account.Address).
		Set(columnPhoneNumber, account.PhoneNumber).
		Set(columnDateJoined, account.DateJoined).
		Where(sq.Eq{columnID: account.ID}).
		Suffix(returningAccountColumns()).
		ToSql()
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.
		Delete(accountsTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}
