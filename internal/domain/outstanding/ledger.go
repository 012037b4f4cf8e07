package outstanding

import (
	"strings"
	"time"
)

// NewOutstanding builds a record from a validated create request. Status
// defaults to Pending and date to today.
func NewOutstanding(req CreateOutstandingRequest, today time.Time) (Outstanding, error) {
	if err := req.Validate(); err != nil {
		return Outstanding{}, err
	}

	o := Outstanding{
		Type:        Type(req.Type),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Amount:      *req.Amount,
		Date:        today,
		Status:      StatusPending,
	}
	if req.Date != "" {
		o.Date = parseDate(req.Date)
	}
	if req.Status != "" {
		o.Status = Status(req.Status)
	}
	return o, nil
}

// ApplyUpdate copies only the fields present in req onto o. Amount and
// status are independent: paying a record off does not zero its amount and
// changing the amount does not move its status.
func ApplyUpdate(o Outstanding, req UpdateOutstandingRequest) (Outstanding, error) {
	if err := req.Validate(); err != nil {
		return o, err
	}

	if req.Type != nil {
		o.Type = Type(*req.Type)
	}
	if req.Name != nil {
		o.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.Amount != nil {
		o.Amount = *req.Amount
	}
	if req.Date != nil {
		o.Date = parseDate(*req.Date)
	}
	if req.Status != nil {
		o.Status = Status(*req.Status)
	}
	return o, nil
}
