package account

import "errors"

var (
	ErrRecordNotFound = errors.New("account record not found")
)
