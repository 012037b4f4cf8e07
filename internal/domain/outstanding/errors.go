package outstanding

import "errors"

var (
	ErrOutstandingNotFound = errors.New("outstanding record not found")
)
