package client

import "errors"

var (
	errInvalidID        = errors.New("id must be a positive integer")
	errNoPostDataGiven  = errors.New("either --data or --title and --user-id must be given")
	errNegativeInterval = errors.New("watch interval must not be negative")
)
