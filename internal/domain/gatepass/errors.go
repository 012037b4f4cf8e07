package gatepass

import "errors"

var (
	ErrGatepassNotFound = errors.New("gatepass not found")
)
