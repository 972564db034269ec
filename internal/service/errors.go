package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAccountID    = errors.New("invalid account id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
