package chemical

import "errors"

var (
	ErrChemicalNotFound   = errors.New("chemical not found")
	ErrChemicalNameExists = errors.New("a chemical with this name already exists")
)
