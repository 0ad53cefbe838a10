package database

import "errors"

var (
	ErrNoRows   = errors.New("database: no rows")
	ErrConflict = errors.New("database: constraint conflict")
)
