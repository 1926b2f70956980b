package utils

import "errors"

var (
	ErrCityNotFound            = errors.New("city not found")
	ErrPointOfInterestNotFound = errors.New("point of interest not found")
	ErrCityAccessDenied        = errors.New("city claim does not match requested city")
	ErrInvalidPage             = errors.New("invalid page parameter")
	ErrInvalidPageSize         = errors.New("invalid page size parameter")
	ErrInvalidPatch            = errors.New("invalid patch document")
	ErrValidation              = errors.New("validation failed")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountExists           = errors.New("account already exists")
	ErrDatabaseError           = errors.New("database error")
)
