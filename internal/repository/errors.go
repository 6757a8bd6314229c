package repository

import "errors"

// Lookup errors, matched by callers with errors.Is. Anything else coming out
// of a repository is a driver-level storage fault.
var (
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrUserNotFound     = errors.New("user not found")
)
