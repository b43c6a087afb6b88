package controllers

import "errors"

var (
	ErrNoPermission   = errors.New("you do not have permission for this action")
	ErrEmptyCart      = errors.New("cart cannot be empty")
	ErrTableRequired  = errors.New("please select a table for the order")
	ErrSetupDone      = errors.New("setup has already been completed")
	ErrPhoneTaken     = errors.New("this phone number is already registered")
	ErrLastAdmin      = errors.New("at least one active admin must remain")
	ErrHasOpenOrders  = errors.New("this table has an open order and cannot be deleted")
	ErrGroupHasTables = errors.New("this group still has tables, delete them first")
	ErrHasProducts    = errors.New("this category still has products, delete them first")
)
