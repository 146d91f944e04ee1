package postgres

import "errors"

var (
	errNilDBClient         = errors.New("db client is nil")
	errNilPostgresClient   = errors.New("postgres client is nil")
	errDuplicateKey        = errors.New("duplicate key")
	errCheckViolation      = errors.New("check constraint violation")
	errForeignKeyViolation = errors.New("foreign key violation")
	errInvalidIdentifier   = errors.New("invalid identifier")
	errDomainMismatch      = errors.New("fetch domain mismatch")
	errInvalidWindow       = errors.New("invalid fetch window")
)
