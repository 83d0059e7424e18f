package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrEmployeeProfileRequired = errors.New("user has no employee profile")
	ErrOutOfScope              = errors.New("employee is outside your reporting scope")
)
