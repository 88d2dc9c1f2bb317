package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrMalformedPayload = errors.New("malformed resource payload")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrFaultPathIsEmpty = errors.New("fault path is empty")
	ErrFaultNotFound    = errors.New("no fault registered for path")
)
