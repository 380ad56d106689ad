package service

import "errors"

var (
	ErrItemNotFound          = errors.New("item not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrEmailNotFound         = errors.New("email not registered")
	ErrEmailExists           = errors.New("email already registered")
	ErrPasswordIncorrect     = errors.New("password incorrect")
	ErrWeakPassword          = errors.New("password too weak")
	ErrInvalidEmail          = errors.New("email invalid")
	ErrInvalidItemInput      = errors.New("item input invalid")
	ErrInvalidCartAction     = errors.New("cart action invalid")
	ErrInvalidUser           = errors.New("user invalid")
	ErrInvalidPaymentSession = errors.New("payment session id invalid")
	ErrPaymentNotConfigured  = errors.New("payment processor not configured")
)
