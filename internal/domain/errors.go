package domain

import "errors"

var (
	ErrInvalidGoal        = errors.New("weekly goal must be a positive whole number")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
