package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAccount_JSONFieldNames(t *testing.T) {
	account := Account{
		ID:          7,
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Address:     "1 Main St",
		PhoneNumber: "555-0100",
		DateJoined:  NewDate(time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	b, err := json.Marshal(account)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	assert.Equal(t, float64(7), raw["id"])
	assert.Equal(t, "Jane Doe", raw["name"])
	assert.Equal(t, "jane@example.com", raw["email"])
	assert.Equal(t, "1 Main St", raw["address"])
	assert.Equal(t, "555-0100", raw["phone_number"])
	assert.Equal(t, "2022-05-01", raw["date_joined"])
}

func TestAccountRequest_ToAccount_UsesFallbackDate(t *testing.T) {
	fallback := NewDate(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	req := AccountRequest{
		Name:        strPtr("n"),
		Email:       strPtr("e@x.io"),
		Address:     strPtr("a"),
		PhoneNumber: strPtr("p"),
	}

	account := req.ToAccount(3, fallback)

	assert.Equal(t, int64(3), account.ID)
	assert.Equal(t, "n", account.Name)
	assert.Equal(t, "e@x.io", account.Email)
	assert.Equal(t, "a", account.Address)
	assert.Equal(t, "p", account.PhoneNumber)
	assert.Equal(t, fallback, account.DateJoined)
}

func TestAccountRequest_ToAccount_PrefersRequestDate(t *testing.T) {
	joined := NewDate(time.Date(2019, 6, 30, 0, 0, 0, 0, time.UTC))
	req := AccountRequest{DateJoined: &joined}

	account := req.ToAccount(0, Today())

	assert.Equal(t, joined, account.DateJoined)
}

func TestAccountRequest_IgnoresUnknownKeys(t *testing.T) {
	var req AccountRequest
	err := json.Unmarshal([]byte(`{"id": 99, "name": "x", "extra": true}`), &req)
	require.NoError(t, err)

	require.NotNil(t, req.Name)
	assert.Equal(t, "x", *req.Name)
	assert.Nil(t, req.Email)
}
