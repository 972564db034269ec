// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is the persisted customer record. It maps 1:1 to a row of the
// "accounts" table.
type Account struct {
	// ID is assigned by the store on insert and never changes afterwards.
	ID int64 `json:"id" db:"id"`

	// Name is the display name of the account holder.
	Name string `json:"name" db:"name"`

	// Email is the contact email address.
	Email string `json:"email" db:"email"`

	// Address is the postal address.
	Address string `json:"address" db:"address"`

	// PhoneNumber is a free-form contact phone number.
	PhoneNumber string `json:"phone_number" db:"phone_number"`

	// DateJoined is the calendar date the account was opened.
	DateJoined Date `json:"date_joined" db:"date_joined"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AccountRequest is the inbound payload of create and update requests.
//
// Fields are pointers so that a missing key can be told apart from an
// explicit empty value; the validator reports both as field errors.
// Keys not listed here (for example "id") are ignored.
type AccountRequest struct {
	Name        *string `json:"name" validate:"required,min=1,max=64"`
	Email       *string `json:"email" validate:"required,email,max=64"`
	Address     *string `json:"address" validate:"required,min=1,max=256"`
	PhoneNumber *string `json:"phone_number" validate:"required,min=1,max=32"`
	DateJoined  *Date   `json:"date_joined,omitempty"`
}

// ToAccount builds an Account from a validated request. A missing
// DateJoined falls back to fallback.
func (r AccountRequest) ToAccount(id int64, fallback Date) Account {
	account := Account{
		ID:         id,
		DateJoined: fallback,
	}
	if r.Name != nil {
		account.Name = *r.Name
	}
	if r.Email != nil {
		account.Email = *r.Email
	}
	if r.Address != nil {
		account.Address = *r.Address
	}
	if r.PhoneNumber != nil {
		account.PhoneNumber = *r.PhoneNumber
	}
	if r.DateJoined != nil && !r.DateJoined.IsZero() {
		account.DateJoined = *r.DateJoined
	}

	return account
}
