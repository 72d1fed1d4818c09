package domain

import "errors"

var (
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failed")
	ErrInvalidGoal = errors.New("donation goal must be positive")
)
