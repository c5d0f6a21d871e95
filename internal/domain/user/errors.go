package user

import "errors"

var (
	ErrNotFound         = errors.New("user not found")
	ErrPermissionDenied = errors.New("actor lacks permission for this operation")
	ErrInvalidRole      = errors.New("unknown role")
)
