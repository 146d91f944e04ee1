package feed

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyExtensionName = errors.New("extension name is empty")
)

type DuplicateExtensionError struct {
	Name string
}

func (e DuplicateExtensionError) Error() string {
	return fmt.Sprintf("extension \"%s\" is already registered", e.Name)
}

type InvalidQueryError struct {
	Reason string
}

func (e InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid search query: %s", e.Reason)
}

// StoreError is returned when fetching one domain from the data store fails
type StoreError struct {
	Domain Domain
	Err    error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("fetch %s records: %s", e.Domain, e.Err)
}

func (e StoreError) Unwrap() error {
	return e.Err
}
